package util

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser 打开默认浏览器
// 支持 Windows, macOS, Linux
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// rundll32 比 cmd /c start 在旧版 Windows 上更稳定
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}

// OpenBrowserWithFallback 带降级方案的浏览器打开
func OpenBrowserWithFallback(url string) error {
	if err := OpenBrowser(url); err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		if err := exec.Command("cmd", "/c", "start", url).Start(); err == nil {
			return nil
		}
	default:
		for _, opener := range []string{"sensible-browser", "x-www-browser", "firefox", "google-chrome"} {
			if err := exec.Command(opener, url).Start(); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("no se pudo abrir el navegador para %s", url)
}
