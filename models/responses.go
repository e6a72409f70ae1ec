// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Flash is a one-shot message shown by the view rendered right after a
// redirect. Kind is "success", "info", "warning" or "danger".
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// UserView is the public representation of a user with its avatar.
type UserView struct {
	User
	Gravatar string `json:"gravatar"`
}

// NewUserView wraps u for rendering with a gravatar of the given size.
func NewUserView(u User, avatarSize int) UserView {
	return UserView{User: u, Gravatar: u.Gravatar(avatarSize)}
}

// UserProfile is what the profile page shows: the user and one page of the
// user's feed, newest statuses first.
type UserProfile struct {
	User UserView          `json:"user"`
	Feed Paginated[Status] `json:"feed"`
}

// FormField describes an input of a rendered form.
type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Value    string `json:"value,omitempty"`
}

// Form describes a form the client should render and submit.
type Form struct {
	Method string      `json:"method"`
	Action string      `json:"action"`
	Fields []FormField `json:"fields"`
}

// View is the JSON envelope every GET page is rendered into.
type View struct {
	Flash *Flash `json:"flash,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// AppInfo is rendered by the home page.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
