package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/models"
)

var errUnknownCommand = errors.New("unknown command")

const usage = `usage: auth-client <command> [flags]

commands:
  sign-up          -name -email -password
  sign-in          -email -password
  change-password  -email -password
  me               -token
  version`

// run executes one command against client and writes its result to out.
func run(ctx context.Context, client adapter.AuthClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", errUnknownCommand, usage)
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(out)
	name := fs.String("name", "", "user name")
	email := fs.String("email", "", "user email")
	password := fs.String("password", "", "user password")
	token := fs.String("token", "", "bearer token")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "sign-up":
		data, err := client.SignUp(ctx, models.SignUpRequest{Name: *name, Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, data)
	case "sign-in":
		data, err := client.SignIn(ctx, models.SignInRequest{Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, struct {
			models.UserData
			Token string `json:"token"`
		}{data, client.Token()})
	case "change-password":
		data, err := client.ChangePassword(ctx, models.ChangePasswordRequest{Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, data)
	case "me":
		client.SetToken(*token)
		data, err := client.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, data)
	case "version":
		version, err := client.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err
	default:
		return fmt.Errorf("%w %q\n%s", errUnknownCommand, args[0], usage)
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
