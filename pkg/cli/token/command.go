// Package token implements the 'ghannotate token' command.
// It stores a GitHub access token in the secret store of the OS
// (Windows Credential Manager, macOS Keychain, or GNOME Keyring) and removes it.
// The stored token is used if GHANNOTATE_KEYRING_ENABLED is true.
package token

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghannotate/pkg/github"
	"github.com/suzuki-shunsuke/ghannotate/pkg/log"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	return ghtoken.Command(ghtoken.NewActor(log.NewSlog(logE), github.KeyService))
}
