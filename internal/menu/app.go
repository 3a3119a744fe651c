// Package menu implements the interactive text frontend: CRUD for
// users, statuses, and pictures, CSV loading, and reconciliation.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/umckinney/social-network-simulator/internal/loader"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/service"
)

// App wires the menu handlers to the services. All prompts read from
// reader and all output goes to out, so tests can drive the menu with
// buffers.
type App struct {
	users    *service.UserService
	statuses *service.StatusService
	pictures *service.PictureService
	loader   *loader.Loader

	reader *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewApp creates a menu App.
func NewApp(
	users *service.UserService,
	statuses *service.StatusService,
	pictures *service.PictureService,
	l *loader.Loader,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *App {
	return &App{
		users:    users,
		statuses: statuses,
		pictures: pictures,
		loader:   l,
		reader:   bufio.NewReader(in),
		out:      out,
		logger:   logger,
	}
}

// Run starts the menu loop. It returns when the user quits or input
// reaches EOF.
func (a *App) Run(ctx context.Context) {
	runMenu(ctx, a, a.reader, a.out)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// LoadUsers prompts for a CSV file name and loads user accounts from it.
func (a *App) LoadUsers(ctx context.Context) error {
	return a.loadFile(ctx, "user", a.loader.LoadUsers)
}

// LoadStatuses prompts for a CSV file name and loads status updates from it.
func (a *App) LoadStatuses(ctx context.Context) error {
	return a.loadFile(ctx, "status update", a.loader.LoadStatuses)
}

// LoadPictures prompts for a CSV file name and loads picture records from it.
func (a *App) LoadPictures(ctx context.Context) error {
	return a.loadFile(ctx, "picture", a.loader.LoadPictures)
}

func (a *App) loadFile(ctx context.Context, label string, load func(context.Context, string) (loader.Summary, error)) error {
	name, err := GetRequiredText(a.reader, fmt.Sprintf("Enter the name of the %s file", label), a.out)
	if err != nil {
		a.printf("No file name entered. Returning to main menu.")
		return err
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		a.printf("%s is not a .csv file. Returning to main menu.", name)
		return fmt.Errorf("not a csv file: %s", name)
	}

	sum, err := load(ctx, name)
	if err != nil {
		a.logger.Warn("csv load failed", "file", name, "error", err)
		a.printf("Something went wrong loading the %s file.", label)
		return err
	}
	a.printf("Inserted %d rows out of %d total rows", sum.Inserted, sum.Total())
	a.printf("Skipped %d rows out of %d total rows.", sum.Skipped, sum.Total())
	return nil
}

// AddUser prompts for user fields and creates the account.
func (a *App) AddUser(ctx context.Context) error {
	input, err := a.promptUser()
	if err != nil {
		a.printf("User input invalid or cancelled. Operation aborted.")
		return err
	}

	if _, err := a.users.Create(ctx, *input); err != nil {
		a.logger.Warn("add user failed", "user_id", input.ID, "error", err)
		a.printf("Unable to add user %s.", input.ID)
		return err
	}
	a.printf("User %s added successfully!", input.ID)
	return nil
}

// UpdateUser prompts for user fields and updates the account.
func (a *App) UpdateUser(ctx context.Context) error {
	input, err := a.promptUser()
	if err != nil {
		a.printf("User input invalid or cancelled. Operation aborted.")
		return err
	}

	update := service.UpdateUserInput{
		Email:    &input.Email,
		Name:     &input.Name,
		LastName: &input.LastName,
	}
	if _, err := a.users.Update(ctx, input.ID, update); err != nil {
		a.logger.Warn("update user failed", "user_id", input.ID, "error", err)
		a.printf("Unable to update user %s.", input.ID)
		return err
	}
	a.printf("User %s updated successfully!", input.ID)
	return nil
}

func (a *App) promptUser() (*service.CreateUserInput, error) {
	id, err := GetRequiredText(a.reader, "User ID", a.out)
	if err != nil {
		return nil, err
	}
	email, err := GetRequiredText(a.reader, "User Email", a.out)
	if err != nil {
		return nil, err
	}
	name, err := GetRequiredText(a.reader, "User Name", a.out)
	if err != nil {
		return nil, err
	}
	lastName, err := GetRequiredText(a.reader, "User Last Name", a.out)
	if err != nil {
		return nil, err
	}
	return &service.CreateUserInput{ID: id, Email: email, Name: name, LastName: lastName}, nil
}

// SearchUser prompts for a user ID and prints the matching account.
func (a *App) SearchUser(ctx context.Context) error {
	id, err := GetRequiredText(a.reader, "Enter a User ID to search", a.out)
	if err != nil {
		a.printf("Search cancelled or invalid input.")
		return err
	}

	user, err := a.users.Get(ctx, id)
	if err != nil {
		a.printf("Unable to find user %s.", id)
		return err
	}
	a.printf("User found!")
	a.printf("User ID     | %s", user.ID)
	a.printf("Email       | %s", user.Email)
	a.printf("User Name   | %s", user.Name)
	a.printf("Last Name   | %s", user.LastName)
	return nil
}

// DeleteUser prompts for a user ID and deletes the account along with
// its statuses and pictures.
func (a *App) DeleteUser(ctx context.Context) error {
	id, err := GetRequiredText(a.reader, "Enter a User ID to delete", a.out)
	if err != nil {
		a.printf("Search cancelled or invalid input.")
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		a.printf("Unable to delete user %s.", id)
		return err
	}
	a.printf("User %s deleted successfully!", id)
	return nil
}

// AddStatus prompts for status fields and creates the status.
func (a *App) AddStatus(ctx context.Context) error {
	input, err := a.promptStatus()
	if err != nil {
		a.printf("Status input invalid or cancelled. Operation aborted.")
		return err
	}

	if _, err := a.statuses.Create(ctx, *input); err != nil {
		a.logger.Warn("add status failed", "status_id", input.ID, "error", err)
		a.printf("Unable to add status %s.", input.ID)
		return err
	}
	a.printf("Status %s added successfully!", input.ID)
	return nil
}

// UpdateStatus prompts for status fields and updates the status.
func (a *App) UpdateStatus(ctx context.Context) error {
	input, err := a.promptStatus()
	if err != nil {
		a.printf("Status input invalid or cancelled. Operation aborted.")
		return err
	}

	if _, err := a.statuses.Update(ctx, input.ID, service.UpdateStatusInput{Text: &input.Text}); err != nil {
		a.logger.Warn("update status failed", "status_id", input.ID, "error", err)
		a.printf("Unable to update status %s.", input.ID)
		return err
	}
	a.printf("Status %s updated successfully!", input.ID)
	return nil
}

func (a *App) promptStatus() (*service.CreateStatusInput, error) {
	id, err := GetRequiredText(a.reader, "Status ID", a.out)
	if err != nil {
		return nil, err
	}
	userID, err := GetRequiredText(a.reader, "User ID", a.out)
	if err != nil {
		return nil, err
	}
	text, err := GetRequiredText(a.reader, "Status Text", a.out)
	if err != nil {
		return nil, err
	}
	return &service.CreateStatusInput{ID: id, UserID: userID, Text: text}, nil
}

// SearchStatus prompts for a status ID and prints the matching status.
func (a *App) SearchStatus(ctx context.Context) error {
	id, err := GetRequiredText(a.reader, "Enter a Status ID to search", a.out)
	if err != nil {
		a.printf("Search cancelled or invalid input.")
		return err
	}

	status, err := a.statuses.Get(ctx, id)
	if err != nil {
		a.printf("Unable to find status %s.", id)
		return err
	}
	a.printf("Status found!")
	a.printf("Status ID   | %s", status.ID)
	a.printf("User ID     | %s", status.UserID)
	a.printf("Status Text | %s", status.Text)
	return nil
}

// DeleteStatus prompts for a status ID and deletes the status.
func (a *App) DeleteStatus(ctx context.Context) error {
	id, err := GetRequiredText(a.reader, "Enter a Status ID to delete", a.out)
	if err != nil {
		a.printf("Search cancelled or invalid input.")
		return err
	}

	if err := a.statuses.Delete(ctx, id); err != nil {
		a.printf("Unable to delete status %s.", id)
		return err
	}
	a.printf("Status %s deleted successfully!", id)
	return nil
}

// AddPicture prompts for picture fields, creates the record, and writes
// its pointer file.
func (a *App) AddPicture(ctx context.Context) error {
	userID, err := GetRequiredText(a.reader, "User ID", a.out)
	if err != nil {
		a.printf("Picture input invalid or cancelled. Operation aborted.")
		return err
	}
	tags, err := GetSimpleText(a.reader, "Tags (start each with # and separated by a space)", a.out)
	if err != nil {
		a.printf("Picture input invalid or cancelled. Operation aborted.")
		return err
	}

	picture, err := a.pictures.Create(ctx, service.CreatePictureInput{UserID: userID, Tags: tags})
	if err != nil {
		a.logger.Warn("add picture failed", "user_id", userID, "error", err)
		a.printf("Unable to add picture for user %s.", userID)
		return err
	}
	a.printf("Picture %s added successfully!", picture.ID)
	return nil
}

// ListPicturesByUser prompts for a user ID and prints a table of the
// user's pictures.
func (a *App) ListPicturesByUser(ctx context.Context) error {
	userID, err := GetRequiredText(a.reader, "Enter a User ID to search", a.out)
	if err != nil {
		a.printf("Search cancelled or invalid input.")
		return err
	}

	pictures, err := a.pictures.ListByUser(ctx, userID)
	if err != nil || len(pictures) == 0 {
		a.printf("No pictures found for user %s.", userID)
		return err
	}

	a.printf("%-8s | %-32s | %s", "Count", "Picture ID", "Tags")
	a.printf("%s", strings.Repeat("-", 80))
	for i, p := range pictures {
		a.printf("%-8d | %-32s | %s", i+1, p.ID, strings.Join(p.Tags, " "))
	}
	return nil
}

// ReconcilePictures prompts for an optional user ID, prints the
// differences between database and disk, and offers to backfill the
// missing pointer files.
func (a *App) ReconcilePictures(ctx context.Context) error {
	userID, err := GetSimpleText(a.reader, "Enter a User ID to reconcile or leave blank to check all users", a.out)
	if err != nil {
		a.printf("Search cancelled or invalid input.")
		return err
	}

	results, err := a.pictures.Reconcile(ctx, userID)
	if err != nil {
		a.printf("Reconciliation failed.")
		return err
	}
	if len(results) == 0 {
		a.printf("RECONCILIATION ABORTED: No record of user %s.", userID)
		return nil
	}

	a.displayReconciliation(results)

	answer, err := GetSimpleText(a.reader, `Enter "Y" to create a pointer file for these results.`, a.out)
	if err != nil || !strings.EqualFold(answer, "y") {
		return nil
	}

	written := 0
	for uid, res := range results {
		n, err := a.pictures.Backfill(ctx, uid, res.OnlyInDB)
		if err != nil {
			a.printf("Backfill failed for user %s.", uid)
			return err
		}
		written += n
	}
	a.printf("Successfully created %d pointer files for %d users.", written, len(results))
	return nil
}

func (a *App) displayReconciliation(results map[string]reconcile.Result) {
	userIDs := make([]string, 0, len(results))
	for uid := range results {
		userIDs = append(userIDs, uid)
	}
	sort.Strings(userIDs)

	divider := strings.Repeat("-", 50)
	for _, uid := range userIDs {
		res := results[uid]
		a.printf("%s", divider)
		a.printf("Reconciliation results for user: %s", uid)
		a.printf("%s", divider)
		a.printf("Pictures listed in database but missing on disk:")
		if len(res.OnlyInDB) > 0 {
			for _, id := range res.OnlyInDB {
				a.printf("- %s", id)
			}
		} else {
			a.printf("None missing on disk")
		}
		a.printf("Pictures found on disk but missing in database:")
		if len(res.OnlyOnDisk) > 0 {
			for _, id := range res.OnlyOnDisk {
				a.printf("- %s", id)
			}
		} else {
			a.printf("None missing in database")
		}
	}
}
