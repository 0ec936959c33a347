package http

import (
	"errors"
	"strings"
	"time"

	"household-calendar/internal/extraction"
	"household-calendar/internal/model"
)

const maxOffsetMinutes = 14 * 60

var (
	errInvalidOffset = errors.New("timezoneOffsetMinutes must be within ±840")
	errInvalidRole   = errors.New("conversationHistory role must be user or assistant")
	errInvalidMember = errors.New("householdMembers need both id and name")
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type memberReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type chatReq struct {
	Message               string      `json:"message" binding:"required,max=2000"`
	ConversationHistory   []turnReq   `json:"conversationHistory"`
	TimezoneOffsetMinutes int         `json:"timezoneOffsetMinutes"`
	HouseholdMembers      []memberReq `json:"householdMembers"`
	CurrentUserName       string      `json:"currentUserName"`
}

func (r chatReq) validate() error {
	if r.TimezoneOffsetMinutes < -maxOffsetMinutes || r.TimezoneOffsetMinutes > maxOffsetMinutes {
		return errInvalidOffset
	}
	for _, t := range r.ConversationHistory {
		if t.Role != string(extraction.RoleUser) && t.Role != string(extraction.RoleAssistant) {
			return errInvalidRole
		}
	}
	for _, m := range r.HouseholdMembers {
		if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.Name) == "" {
			return errInvalidMember
		}
	}
	return nil
}

func (r chatReq) toInput() extraction.Input {
	history := make([]extraction.Turn, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		history = append(history, extraction.Turn{Role: extraction.Role(t.Role), Content: t.Content})
	}
	members := make([]model.Member, 0, len(r.HouseholdMembers))
	for _, m := range r.HouseholdMembers {
		members = append(members, model.Member{ID: m.ID, Name: m.Name})
	}
	return extraction.Input{
		Message:         r.Message,
		History:         history,
		TZOffsetMinutes: r.TimezoneOffsetMinutes,
		Members:         members,
		CurrentUserName: r.CurrentUserName,
	}
}

// --- Response DTOs ---

type proposalResp struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	Attendees   []string  `json:"attendees,omitempty"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"memberIds,omitempty"`
}

func newProposalResp(p model.EventProposal) proposalResp {
	return proposalResp{
		Title:       p.Title,
		Start:       p.Start.UTC(),
		End:         p.End.UTC(),
		Location:    p.Location,
		Attendees:   p.Attendees,
		Description: p.Description,
		MemberIDs:   p.MemberIDs,
	}
}

type chatResp struct {
	Type         string         `json:"type"`
	Message      string         `json:"message"`
	Proposal     *proposalResp  `json:"proposal,omitempty"`
	Proposals    []proposalResp `json:"proposals,omitempty"`
	RecurrenceID string         `json:"recurrenceId,omitempty"`
	RRule        string         `json:"rrule,omitempty"`
}

func (h *handler) newChatResp(out extraction.Output) chatResp {
	resp := chatResp{
		Type:         string(out.Type),
		Message:      out.Message,
		RecurrenceID: out.RecurrenceID,
		RRule:        out.RRule,
	}
	if out.Proposal != nil {
		p := newProposalResp(*out.Proposal)
		resp.Proposal = &p
	}
	if len(out.Proposals) > 0 {
		resp.Proposals = make([]proposalResp, len(out.Proposals))
		for i, p := range out.Proposals {
			resp.Proposals[i] = newProposalResp(p)
		}
	}
	return resp
}
