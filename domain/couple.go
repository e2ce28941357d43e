package domain

import "errors"

var (
	MessageSuccessGetCouple        = "couple retrieved successfully"
	MessageSuccessJoinCouple       = "couple joined successfully"
	MessageSuccessUpdateCouple     = "couple updated successfully"
	MessageSuccessRegenerateInvite = "invite code regenerated"
	MessageSuccessSendInvite       = "invite sent successfully"

	MessageFailedGetCouple        = "failed to retrieve couple"
	MessageFailedJoinCouple       = "failed to join couple"
	MessageFailedUpdateCouple     = "failed to update couple"
	MessageFailedRegenerateInvite = "failed to regenerate invite code"
	MessageFailedSendInvite       = "failed to send invite"

	ErrCoupleNotFound    = errors.New("couple not found")
	ErrInviteCodeInvalid = errors.New("invite code invalid")
	ErrCoupleFull        = errors.New("couple already has two members")
	ErrAlreadyInCouple   = errors.New("user already belongs to a couple")
	ErrNoCouple          = errors.New("user has no couple")
)

type (
	JoinCoupleRequest struct {
		Code string `json:"code" validate:"required"`
	}

	UpdateCoupleRequest struct {
		Name string `json:"name" validate:"required"`
	}

	SendInviteRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	CoupleResponse struct {
		ID         string         `json:"id"`
		Name       string         `json:"name"`
		InviteCode string         `json:"invite_code,omitempty"`
		Members    []CoupleMember `json:"members,omitempty"`
	}

	CoupleMember struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		AvatarURL   string `json:"avatar_url,omitempty"`
	}
)
