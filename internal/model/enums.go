package model

import "strings"

type WorkspaceType string

const (
	WorkspacePersonal WorkspaceType = "personal"
	WorkspaceTeam     WorkspaceType = "team"
)

func (t WorkspaceType) Valid() bool {
	return t == WorkspacePersonal || t == WorkspaceTeam
}

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityShared
}

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Роли участников команды
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// Blank reports whether a required text field is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// setText overwrites dst with the trimmed value unless it is blank.
func setText(dst *string, src *string) {
	if src == nil || Blank(*src) {
		return
	}
	*dst = strings.TrimSpace(*src)
}
