package inkwell_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/inkwell"
)

// Example_basic demonstrates how to open a vault, create a note, and
// read it back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "inkwell-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Open the app over the temporary vault directory.
	app, err := inkwell.Open(context.Background(), tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Start a local session
	user, err := app.Sessions().Login(ctx, "gopher@example.com", "secret")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Logged in as: %s\n", user.Username)

	// 2. Create a note
	note, err := app.Notes().Create(ctx, "Hello", "This is my first note in Inkwell.")
	if err != nil {
		log.Fatal(err)
	}

	// 3. Read it back
	got, ok := app.Notes().Get(note.ID)
	if !ok {
		log.Fatal("note not found")
	}

	fmt.Printf("Found note: %s\n", got.Title)
	// Output:
	// Logged in as: gopher
	// Found note: Hello
}
