package main

import (
	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func userSpec() resourceSpec[types.User] {
	return resourceSpec[types.User]{
		use:      "users",
		singular: "user",
		navPath:  "/users",
		filter:   "role",
		ctrl: controller.Config[types.User]{
			Name: "user",
			ID:   func(u types.User) string { return u.ID },
			SearchFields: func(u types.User) []string {
				return []string{u.Name, u.Email}
			},
			Facet: func(u types.User) string { return string(u.Role) },
			FormFromItem: func(u types.User) map[string]any {
				return formFields(types.UserForm{
					Name:           u.Name,
					Email:          u.Email,
					Role:           u.Role,
					OrganizationID: u.OrganizationID,
					IsActive:       u.IsActive,
				})
			},
			ValidateForm: validateAs[types.UserForm],
		},
		headers: []string{"ID", "NAME", "EMAIL", "ROLE", "ACTIVE"},
		row: func(u types.User) []string {
			active := "no"
			if u.IsActive {
				active = "yes"
			}
			return []string{u.ID, u.Name, u.Email, string(u.Role), active}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(userSpec(), func() resourceAPI[types.User] { return api.Users }))
}
