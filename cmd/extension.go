package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/moneymind/logger"
)

// ExtensionPrefix is the prefix of the external binaries run for unknown
// subcommands: "mm foo" runs "mm-foo".
const ExtensionPrefix = "mm-"

// extensionEnv returns the global flags as environment variables, so that
// extensions use the same store and user.
func extensionEnv() []string {
	return []string{
		EnvStore + "=" + *storeKind,
		EnvDB + "=" + *dbFile,
		EnvRedis + "=" + *redisAddr,
		EnvUser + "=" + *userEmail,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
		EnvPlain + "=" + strconv.FormatBool(*plain),
	}
}

// RunExtension attempts to find and execute an external mm-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	log := logger.FromContext(ctx)
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Str("extension", name).Err(err).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.CommandContext(ctx, lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
