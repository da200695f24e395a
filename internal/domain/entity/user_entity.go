package entity

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a free-form role string against the closed enumeration.
// An empty string defaults to RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser, "":
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
//
// Votes is the user's vote ledger: the last vote (+1 or -1) this user cast
// per answer id. Absence of a key means the user never voted on that answer.
type User struct {
	ID            string
	Name          string
	UserName      string
	Email         string
	PasswordHash  string
	Role          Role
	IsActive      bool
	Votes         map[string]int
	Notifications NotificationLists
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NotificationLists keeps per-user notification ids split into unread and
// read. An id lives in at most one of the two lists at any time.
type NotificationLists struct {
	Unread []string `json:"unread"`
	Read   []string `json:"read"`
}

// Deliver appends a notification id to the unread list. Redelivery of an id
// already present in either list is a no-op.
func (n *NotificationLists) Deliver(id string) {
	if containsID(n.Unread, id) || containsID(n.Read, id) {
		return
	}
	n.Unread = append(n.Unread, id)
}

// MarkRead moves id from unread to read. Returns false when the id is not in
// the unread list.
func (n *NotificationLists) MarkRead(id string) bool {
	for i, v := range n.Unread {
		if v == id {
			n.Unread = append(n.Unread[:i], n.Unread[i+1:]...)
			if !containsID(n.Read, id) {
				n.Read = append(n.Read, id)
			}
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// VoteOn returns the last vote the user cast on the given answer, 0 if none.
func (u *User) VoteOn(answerID string) int {
	if u.Votes == nil {
		return 0
	}
	return u.Votes[answerID]
}

// SetVote records the last-cast vote for an answer in the ledger.
func (u *User) SetVote(answerID string, vote int) {
	if u.Votes == nil {
		u.Votes = make(map[string]int)
	}
	u.Votes[answerID] = vote
}

// PublicUser is the subset of User safe to return to clients.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public projects the user without its password hash or internal ledgers.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
