package http

import (
	"crypto/sha256"
	"encoding/hex"

	"production-board/internal/dataview"
	"production-board/internal/model"
	"production-board/internal/view"
)

// --- Request DTOs ---

type scheduleReq struct {
	Shots model.Collection[model.Shot] `json:"shots"`
	key   string
}

func (r scheduleReq) toInput() view.ScheduleInput {
	return view.ScheduleInput{
		Key:   r.key,
		Shots: r.Shots,
	}
}

// ---

// listReq is the body of a list request. Items accepts a bare array, a
// paginated envelope or null.
type listReq[T model.Entity] struct {
	Items model.Collection[T]  `json:"items"`
	State dataview.StatePatch `json:"state"`
	Due   string              `json:"due"`
	key   string
}

func (r listReq[T]) toInput() view.ListInput[T] {
	return view.ListInput[T]{
		Key:   r.key,
		Items: r.Items,
		State: r.State,
		Due:   r.Due,
	}
}

// listDoc documents the list body for swagger, which cannot render listReq[T].
type listDoc struct {
	Items []map[string]any    `json:"items"`
	State dataview.StatePatch `json:"state"`
	Due   string              `json:"due" example:"in 3 days"`
}

// bodyKey identifies a request body for memoization.
func bodyKey(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// --- Response DTOs ---

type scheduleResp struct {
	Groups   map[string][]model.Shot `json:"groups"`
	Dates    []string                `json:"dates"`
	Progress dataview.Summary        `json:"progress"`
}

func (h *handler) newScheduleResp(out view.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Groups:   out.Groups,
		Dates:    out.Dates,
		Progress: out.Progress,
	}
}

type listResp struct {
	Items    any                  `json:"items"`
	Total    int                  `json:"total"`
	Count    int                  `json:"count"`
	State    dataview.FilterState `json:"state"`
	Progress dataview.Summary     `json:"progress"`
}

func newListResp[T model.Entity](out view.ListOutput[T]) listResp {
	return listResp{
		Items:    out.Items,
		Total:    out.Total,
		Count:    out.Count,
		State:    out.State,
		Progress: out.Progress,
	}
}

type stateResp struct {
	Kind  view.Kind            `json:"kind"`
	State dataview.FilterState `json:"state"`
}

func (h *handler) newStateResp(kind view.Kind, state dataview.FilterState) stateResp {
	return stateResp{Kind: kind, State: state}
}
