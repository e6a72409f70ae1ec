// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-microblog/models"

func registrationForm() models.Form {
	return models.Form{
		Method: "POST",
		Action: "/users",
		Fields: []models.FormField{
			{Name: "name", Type: "text", Required: true},
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
			{Name: "password_confirmation", Type: "password", Required: true},
		},
	}
}

func editForm(user models.User) models.Form {
	return models.Form{
		Method: "PATCH",
		Action: userPath(user.ID),
		Fields: []models.FormField{
			{Name: "name", Type: "text", Required: true, Value: user.Name},
			{Name: "password", Type: "password", Required: true},
			{Name: "password_confirmation", Type: "password", Required: true},
		},
	}
}

func loginForm() models.Form {
	return models.Form{
		Method: "POST",
		Action: "/login",
		Fields: []models.FormField{
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	}
}
