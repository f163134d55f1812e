// Package open hands URLs to the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/yleguide/yleguide/constant"
)

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	cmd, err := command(runtime.GOOS, input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// WebPage is the broadcaster's page of a program.
func WebPage(contentID string) string {
	return constant.WebURL + contentID
}

func command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("opening urls is not supported on %s", goos)
	}
}
