package store

import (
	"context"
	"fmt"

	"github.com/osokin/lingvo/ent"
	"github.com/osokin/lingvo/ent/llmrequestevent"
	"github.com/osokin/lingvo/ent/messageevent"
)

// auditRepo implements AuditRepo using the ent client.
type auditRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *auditRepo) AppendMessage(ctx context.Context, data MessageEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.MessageEvent.Create().
		SetSequence(seq).
		SetUserID(data.UserID).
		SetKind(data.Kind).
		SetText(data.Text).
		SetState(data.State).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append message event: %w", err)
	}
	return nil
}

func (r *auditRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *auditRepo) RecentLLMEvents(ctx context.Context, limit int) ([]*LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]*LLMEvent, len(events))
	for i, e := range events {
		out[i] = &LLMEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
				RequestBody:  e.RequestBody,
				ResponseBody: e.ResponseBody,
			},
		}
	}
	return out, nil
}

func (r *auditRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	var rows []struct {
		Purpose string  `json:"purpose"`
		Calls   int     `json:"count"`
		Input   int     `json:"sum_input_tokens"`
		Output  int     `json:"sum_output_tokens"`
		Latency float64 `json:"mean_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.Count(),
			ent.Sum(llmrequestevent.FieldInputTokens),
			ent.Sum(llmrequestevent.FieldOutputTokens),
			ent.Mean(llmrequestevent.FieldLatencyMs),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	out := make([]LLMUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
			AvgLatencyMs: int64(row.Latency),
		}
	}
	return out, nil
}

func (r *auditRepo) MessageStatsByKind(ctx context.Context) ([]MessageStats, error) {
	var rows []struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}

	err := r.client.MessageEvent.Query().
		GroupBy(messageevent.FieldKind).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate message stats: %w", err)
	}

	out := make([]MessageStats, len(rows))
	for i, row := range rows {
		out[i] = MessageStats{Kind: row.Kind, Count: row.Count}
	}
	return out, nil
}
