package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the menu loop needs. The real
// App type satisfies this interface; tests can provide a stub.
type execIface interface {
	LoadUsers(ctx context.Context) error
	LoadStatuses(ctx context.Context) error
	LoadPictures(ctx context.Context) error
	AddUser(ctx context.Context) error
	UpdateUser(ctx context.Context) error
	SearchUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	AddStatus(ctx context.Context) error
	UpdateStatus(ctx context.Context) error
	SearchStatus(ctx context.Context) error
	DeleteStatus(ctx context.Context) error
	AddPicture(ctx context.Context) error
	ListPicturesByUser(ctx context.Context) error
	ReconcilePictures(ctx context.Context) error
}

const menuText = `
A: Load user database
B: Load status database
C: Add user
D: Update user
E: Search user
F: Delete user
G: Add status
H: Update status
I: Search status
J: Delete status
K: Add picture
L: List pictures by user
M: Reconcile pictures
N: Load picture database
Q: Quit

Please enter your choice: `

// runMenu drives the menu loop: print options, read a selection, and
// dispatch to the matching handler on a. Handler errors are already
// reported to the user by the handlers themselves, so the loop ignores
// them and keeps going. The loop exits on Q, EOF, or context
// cancellation.
func runMenu(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprint(out, menuText)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "A":
			_ = a.LoadUsers(ctx)
		case "B":
			_ = a.LoadStatuses(ctx)
		case "C":
			_ = a.AddUser(ctx)
		case "D":
			_ = a.UpdateUser(ctx)
		case "E":
			_ = a.SearchUser(ctx)
		case "F":
			_ = a.DeleteUser(ctx)
		case "G":
			_ = a.AddStatus(ctx)
		case "H":
			_ = a.UpdateStatus(ctx)
		case "I":
			_ = a.SearchStatus(ctx)
		case "J":
			_ = a.DeleteStatus(ctx)
		case "K":
			_ = a.AddPicture(ctx)
		case "L":
			_ = a.ListPicturesByUser(ctx)
		case "M":
			_ = a.ReconcilePictures(ctx)
		case "N":
			_ = a.LoadPictures(ctx)
		case "Q":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "That is not a valid option. Please select again.")
		}

		if err != nil {
			// Partial line followed by EOF.
			return
		}
	}
}
