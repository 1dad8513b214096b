// Package chat holds the conversation state of the symptom chat: the
// transcript, the health status and the sequencing of prediction requests.
//
// State is not safe for concurrent use. The TUI mutates it only from its
// update loop.
package chat

import (
	"strings"

	"github.com/diogo/symptrack/internal/models"
)

// State is the application state behind the chat controller
type State struct {
	messages []models.Message

	// status is what the badge shows; settled is the last non-analyzing value
	status  models.HealthStatus
	settled models.HealthStatus

	seq     uint64 // last sequence number handed out
	pending uint64 // outstanding request, 0 when idle

	last *models.Prediction
}

// New returns an idle state with an empty transcript and good health
func New() *State {
	return &State{
		status:  models.HealthGood,
		settled: models.HealthGood,
	}
}

// Messages returns a copy of the transcript
func (s *State) Messages() []models.Message {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of transcript messages
func (s *State) Len() int {
	return len(s.messages)
}

// Status returns the current health status
func (s *State) Status() models.HealthStatus {
	return s.status
}

// Loading reports whether a request is outstanding (typing indicator shown)
func (s *State) Loading() bool {
	return s.pending != 0
}

// Pending returns the sequence number of the outstanding request, or 0
func (s *State) Pending() uint64 {
	return s.pending
}

// LastPrediction returns the prediction of the latest current reply, or nil
func (s *State) LastPrediction() *models.Prediction {
	return s.last
}

// Submit starts a prediction for text. It appends the user message, moves
// the status to analyzing and returns the sequence number the result must
// carry. Blank text, or a request already outstanding, returns false and
// changes nothing.
func (s *State) Submit(text string) (uint64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.pending != 0 {
		return 0, false
	}

	s.messages = append(s.messages, models.UserMessage(text))
	s.status = models.HealthAnalyzing
	s.seq++
	s.pending = s.seq
	return s.seq, true
}

// Resolve applies a decoded prediction reply. The message is appended even
// for a stale seq; status and the last prediction only move for the
// outstanding request. A nil result reads as an empty prediction. It
// reports whether seq was the outstanding request.
func (s *State) Resolve(seq uint64, result *models.PredictResult) bool {
	current := s.isCurrent(seq)
	if result == nil {
		result = &models.PredictResult{}
	}

	if result.IsError() {
		s.messages = append(s.messages, models.ErrorMessage(result.Error))
		if current {
			s.finish(s.settled)
		}
		return current
	}

	p := result.Prediction
	if p == nil {
		p = &models.Prediction{}
	}
	s.messages = append(s.messages, models.PredictionMessage(p))
	if current {
		s.last = p
		s.finish(p.Severity().HealthStatus())
	}
	return current
}

// Fail records a transport, status or decode failure for seq. The generic
// apology is appended and the status reset to good. Failures of stale
// requests are dropped.
func (s *State) Fail(seq uint64) bool {
	if !s.isCurrent(seq) {
		return false
	}
	s.messages = append(s.messages, models.AssistantMessage(models.GenericFailure))
	s.finish(models.HealthGood)
	return true
}

// Cancel abandons the outstanding request and restores the settled status.
// It returns the abandoned sequence number, or 0 when idle.
func (s *State) Cancel() uint64 {
	seq := s.pending
	if seq != 0 {
		s.finish(s.settled)
	}
	return seq
}

// QuickAction appends the canned reply for id. Unknown ids change nothing.
func (s *State) QuickAction(id string) bool {
	reply, ok := models.QuickActionReply(id)
	if !ok {
		return false
	}
	s.messages = append(s.messages, models.AssistantMessage(reply))
	return true
}

func (s *State) isCurrent(seq uint64) bool {
	return seq != 0 && seq == s.pending
}

func (s *State) finish(status models.HealthStatus) {
	s.pending = 0
	s.status = status
	s.settled = status
}
