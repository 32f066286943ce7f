// Package relay fans one contact submission out to the operator mailbox,
// the chat channel and the customer.
//
// Only the operator email decides the outcome. Chat and customer
// acknowledgment are attempted after it succeeds, and their failures are
// logged and recorded but never returned.
package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertrohr/web/internal/chat"
	"github.com/expertrohr/web/internal/config"
	"github.com/expertrohr/web/internal/mailer"
	"github.com/expertrohr/web/internal/models"
	"github.com/expertrohr/web/internal/render"
)

var (
	ErrRender           = errors.New("render documents")
	ErrOperatorDispatch = errors.New("operator dispatch failed")
)

// Recorder persists dispatch outcomes. Implementations must not see
// submission contents.
type Recorder interface {
	RecordOutcomes(ctx context.Context, outcomes []models.DispatchOutcome) error
}

type Relay struct {
	Mailer   mailer.Mailer
	Chat     chat.Notifier
	Recorder Recorder
	Brand    config.Brand
	From     string
	Operator string
	Logo     mailer.Inline
	Logger   zerolog.Logger
	Now      func() time.Time
}

type Result struct {
	Outcomes []models.DispatchOutcome
}

// Delivered reports whether the given sink received its message.
func (r Result) Delivered(sink models.Sink) bool {
	for _, o := range r.Outcomes {
		if o.Sink == sink {
			return o.Status == models.StatusDelivered
		}
	}
	return false
}

func (r *Relay) Submit(ctx context.Context, requestID string, s models.Submission) (Result, error) {
	log := r.Logger.With().Str("request_id", requestID).Bool("urgent", s.Urgent).Logger()
	log.Info().Bool("has_email", s.HasEmail()).Msg("submission received")

	docs, err := render.Render(r.Brand, s)
	if err != nil {
		log.Error().Err(err).Msg("failed to render documents")
		return Result{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	res := Result{}
	defer func() { r.record(ctx, log, res.Outcomes) }()

	replyTo := s.Email
	if replyTo == "" {
		replyTo = r.Operator
	}
	err = r.Mailer.Send(ctx, mailer.Message{
		From:    r.From,
		To:      r.Operator,
		ReplyTo: replyTo,
		Subject: docs.OperatorSubject,
		Text:    docs.PlainText,
		HTML:    docs.OperatorHTML,
		Inline:  r.inline(),
	})
	res.Outcomes = append(res.Outcomes, r.outcome(requestID, models.SinkOperatorEmail, s.Urgent, err))
	if err != nil {
		log.Error().Err(err).Msg("operator email failed")
		return res, fmt.Errorf("%w: %w", ErrOperatorDispatch, err)
	}
	log.Info().Msg("operator email sent")

	res.Outcomes = append(res.Outcomes, r.notifyChat(ctx, log, requestID, s, docs.Chat))
	res.Outcomes = append(res.Outcomes, r.acknowledge(ctx, log, requestID, s, docs))
	return res, nil
}

func (r *Relay) notifyChat(ctx context.Context, log zerolog.Logger, requestID string, s models.Submission, text string) models.DispatchOutcome {
	if r.Chat == nil || !r.Chat.Enabled() {
		return r.skipped(requestID, models.SinkChat, s.Urgent)
	}
	err := r.Chat.Notify(ctx, text)
	if err != nil {
		log.Warn().Str("error_class", errorClass(err)).Msg("chat notification failed")
	} else {
		log.Info().Msg("chat notification sent")
	}
	return r.outcome(requestID, models.SinkChat, s.Urgent, err)
}

func (r *Relay) acknowledge(ctx context.Context, log zerolog.Logger, requestID string, s models.Submission, docs render.Documents) models.DispatchOutcome {
	if !s.HasEmail() {
		log.Info().Msg("no customer email, acknowledgment skipped")
		return r.skipped(requestID, models.SinkCustomerEmail, s.Urgent)
	}
	err := r.Mailer.Send(ctx, mailer.Message{
		From:    r.From,
		To:      s.Email,
		ReplyTo: r.Operator,
		Subject: docs.CustomerSubject,
		Text:    docs.PlainText,
		HTML:    docs.CustomerHTML,
		Inline:  r.inline(),
	})
	if err != nil {
		// smtp replies often echo the recipient, so only the class is logged
		log.Warn().Str("error_class", errorClass(err)).Msg("customer acknowledgment failed")
	} else {
		log.Info().Msg("customer acknowledgment sent")
	}
	return r.outcome(requestID, models.SinkCustomerEmail, s.Urgent, err)
}

func (r *Relay) record(ctx context.Context, log zerolog.Logger, outcomes []models.DispatchOutcome) {
	if r.Recorder == nil || len(outcomes) == 0 {
		return
	}
	if err := r.Recorder.RecordOutcomes(ctx, outcomes); err != nil {
		log.Warn().Err(err).Msg("failed to record dispatch outcomes")
	}
}

func (r *Relay) inline() []mailer.Inline {
	if len(r.Logo.Data) == 0 {
		return nil
	}
	return []mailer.Inline{r.Logo}
}

func (r *Relay) outcome(requestID string, sink models.Sink, urgent bool, err error) models.DispatchOutcome {
	o := models.DispatchOutcome{
		RequestID: requestID,
		Sink:      sink,
		Status:    models.StatusDelivered,
		Urgent:    urgent,
		At:        r.now(),
	}
	if err != nil {
		o.Status = models.StatusFailed
		o.Error = errorClass(err)
	}
	return o
}

// errorClass maps a transport error to a fixed label. Raw error text can
// carry submission values and must not leave the request.
func errorClass(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return "timeout"
		}
		return "network"
	default:
		return "rejected"
	}
}

func (r *Relay) skipped(requestID string, sink models.Sink, urgent bool) models.DispatchOutcome {
	return models.DispatchOutcome{
		RequestID: requestID,
		Sink:      sink,
		Status:    models.StatusSkipped,
		Urgent:    urgent,
		At:        r.now(),
	}
}

func (r *Relay) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now().UTC()
}
