package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/router"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

var (
	userFields = []formField{
		{Name: "firstName", Label: "First name"},
		{Name: "lastName", Label: "Last name"},
		{Name: "email", Label: "Email"},
		{Name: "role", Label: "Role (user/admin)"},
	}
	profileFields = []formField{
		{Name: "firstName", Label: "First name"},
		{Name: "lastName", Label: "Last name"},
		{Name: "email", Label: "Email"},
	}
)

// requireAdmin applies the users route's access level to commands that act
// on a user without opening a view. It reports whether the caller may go on.
func (a *App) requireAdmin(ctx context.Context) bool {
	d := a.gate.Resolve(router.PathUsers, a.session(ctx))
	if d.Redirect == "" {
		return true
	}
	a.toast.Error("Access denied")
	if err := a.open(ctx, d.Redirect, false); err != nil {
		a.log.Warn(ctx, "redirect", "error", err)
	}
	return false
}

// CreateUser adds an account; the backend emails the new user a setup link.
func (a *App) CreateUser(ctx context.Context) error {
	initial := a.kept(router.CreateUser)
	if initial == nil {
		initial = validation.Values{"role": string(models.RoleUser)}
	}
	v, err := a.fill("Create user", validation.CreateUserSchema, userFields, initial)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	u, err := a.users.Create(ctx, userInput(v))
	if err != nil {
		a.keep(router.CreateUser, v)
		a.report(ctx, err, "Failed to create user")
		return err
	}
	a.forget(router.CreateUser)
	a.log.Info(ctx, "user created", "id", u.ID, "role", u.Role)
	a.toast.Success("User created successfully")
	return a.open(ctx, router.PathUsers, false)
}

func (a *App) findUser(ctx context.Context, id string) (models.User, error) {
	if lv, ok := a.mounted().(*listView[models.User]); ok {
		if u, found := lv.lookup(id); found {
			return u, nil
		}
	}
	return a.users.Get(ctx, id)
}

func (a *App) userLoadFailed(ctx context.Context, err error) {
	if errors.Is(err, common.ErrNotFound) {
		a.toast.Error("User not found")
		return
	}
	a.report(ctx, err, "Failed to load user")
}

// EditUser changes a user's name, email or role.
func (a *App) EditUser(ctx context.Context, id string) error {
	if !a.requireAdmin(ctx) {
		return nil
	}
	u, err := a.findUser(ctx, id)
	if err != nil {
		a.userLoadFailed(ctx, err)
		return nil
	}
	key := "edit-user:" + u.ID
	initial := a.kept(key)
	if initial == nil {
		initial = validation.Values{
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"email":     u.Email,
			"role":      string(u.Role),
		}
	}
	v, err := a.fill("Edit user", validation.EditUserSchema, userFields, initial)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	updated, err := a.users.Update(ctx, u.ID, userInput(v))
	if err != nil {
		a.keep(key, v)
		a.report(ctx, err, "Failed to update user")
		return err
	}
	a.forget(key)
	a.toast.Success("User updated successfully")
	if updated.Status == "" {
		updated.Status = u.Status
	}
	a.refreshUser(ctx, updated)
	return nil
}

// ToggleUser flips a user between active and inactive.
func (a *App) ToggleUser(ctx context.Context, id string) error {
	if !a.requireAdmin(ctx) {
		return nil
	}
	u, err := a.findUser(ctx, id)
	if err != nil {
		a.userLoadFailed(ctx, err)
		return nil
	}
	if u.ID == a.session(ctx).User.ID {
		a.toast.Error("You cannot deactivate your own account")
		return nil
	}
	updated, msg, err := a.users.ToggleStatus(ctx, u)
	if err != nil {
		a.report(ctx, err, "Failed to update user status")
		return err
	}
	a.toast.Success(orDefault(msg, "User status updated to "+string(updated.Status)))
	a.refreshUser(ctx, updated)
	return nil
}

// DeleteUser asks for confirmation and deletes. Declining sends nothing.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	if !a.requireAdmin(ctx) {
		return nil
	}
	u, err := a.findUser(ctx, id)
	if err != nil {
		a.userLoadFailed(ctx, err)
		return nil
	}
	if u.ID == a.session(ctx).User.ID {
		a.toast.Error("You cannot delete your own account")
		return nil
	}
	ok, err := a.confirm("Delete user", fmt.Sprintf("Are you sure you want to delete %s (%s)? This cannot be undone.", u.FullName(), u.Email))
	if err != nil {
		return err
	}
	if !ok {
		a.println(a.st.Muted.Render("Canceled."))
		return nil
	}
	if err := a.users.Delete(ctx, u.ID); err != nil {
		a.report(ctx, err, "Failed to delete user")
		return err
	}
	a.toast.Success("User deleted successfully")
	if lv, ok := a.mounted().(*listView[models.User]); ok {
		lv.remove(u.ID)
		a.println(lv.await(ctx))
	}
	return nil
}

// refreshUser swaps the updated user into the mounted list and redraws it.
func (a *App) refreshUser(ctx context.Context, u models.User) {
	lv, ok := a.mounted().(*listView[models.User])
	if !ok {
		return
	}
	lv.replace(u)
	a.println(lv.await(ctx))
}

// EditProfile lets the signed-in user change their own name and email. The
// stored session user is updated on success.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return a.open(ctx, router.PathLogin, false)
	}
	u, err := a.users.LoadProfile(ctx)
	if err != nil {
		a.report(ctx, err, "Failed to load profile")
		return err
	}
	initial := a.kept(router.Profile)
	if initial == nil {
		initial = validation.Values{"firstName": u.FirstName, "lastName": u.LastName, "email": u.Email}
	}
	v, err := a.fill("Edit profile", validation.ProfileSchema, profileFields, initial)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	if _, err := a.users.UpdateProfile(ctx, models.ProfileInput{
		FirstName: v["firstName"],
		LastName:  v["lastName"],
		Email:     v["email"],
	}); err != nil {
		a.keep(router.Profile, v)
		a.report(ctx, err, "Failed to update profile")
		return err
	}
	a.forget(router.Profile)
	a.toast.Success("Profile updated successfully")
	return a.open(ctx, router.PathProfile, false)
}

func userInput(v validation.Values) models.UserInput {
	return models.UserInput{
		FirstName: v["firstName"],
		LastName:  v["lastName"],
		Email:     v["email"],
		Role:      models.Role(v["role"]),
	}
}
