package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"moodscape/config"
)

const (
	// initialLinesToShow bounds how much of the log is loaded up front
	initialLinesToShow = 500
	// maxFollowedLines caps the label while Follow is on so a chatty log
	// cannot grow the window content without bound
	maxFollowedLines = 2000
)

// ShowLogWindow opens the log viewer: the tail of moodscape.log, a search
// box over the loaded lines, and a Follow toggle that streams appended
// lines live.
func ShowLogWindow(moodApp fyne.App) {
	logPath, err := config.LogPath()
	if err != nil {
		log.Printf("[UI] cannot locate log file: %v", err)
		return
	}

	logWindow := moodApp.NewWindow("Moodscape Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var loadedLines []string

	updateDisplay := func() {
		logLabel.SetText(strings.Join(loadedLines, "\n"))
	}

	searchButton := widget.NewButton("Search", func() {
		query := searchEntry.Text
		if query == "" {
			updateDisplay()
			return
		}

		var filtered []string
		queryLower := strings.ToLower(query)
		for _, line := range loadedLines {
			if strings.Contains(strings.ToLower(line), queryLower) {
				filtered = append(filtered, line)
			}
		}

		if len(filtered) == 0 {
			logLabel.SetText(fmt.Sprintf("No results found for: %s", query))
		} else {
			logLabel.SetText(strings.Join(filtered, "\n") +
				fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered)))
		}
	})

	clearButton := widget.NewButton("Clear", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	// Follow mode streams lines appended after the window opened.
	var follower *tail.Tail
	stopFollowing := func() {
		if follower != nil {
			follower.Stop()
			follower.Cleanup()
			follower = nil
		}
	}

	followCheck := widget.NewCheck("Follow", func(on bool) {
		if !on {
			stopFollowing()
			log.Println("[UI] Log follow stopped")
			return
		}

		t, err := tail.TailFile(logPath, tail.Config{
			Follow: true,
			ReOpen: true, // keep following across rotation
			Poll:   true,
			Location: &tail.SeekInfo{
				Whence: io.SeekEnd,
			},
			Logger: tail.DiscardingLogger,
		})
		if err != nil {
			log.Printf("[UI] cannot follow log file: %v", err)
			return
		}
		follower = t
		log.Println("[UI] Log follow started")

		go func() {
			for line := range t.Lines {
				if line.Err != nil {
					continue
				}
				text := line.Text
				fyne.Do(func() {
					loadedLines = append(loadedLines, text)
					if len(loadedLines) > maxFollowedLines {
						loadedLines = loadedLines[len(loadedLines)-maxFollowedLines:]
					}
					updateDisplay()
				})
			}
		}()
	})

	// Initial load: last initialLinesToShow lines of the current log.
	loadedLines = tailOfFile(logPath, initialLinesToShow)
	updateDisplay()

	searchBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, followCheck),
		searchEntry,
	)
	scroll := container.NewScroll(logLabel)
	content := container.NewBorder(searchBar, nil, nil, nil, scroll)

	logWindow.SetCloseIntercept(func() {
		stopFollowing()
		logWindow.Close()
	})
	logWindow.SetContent(content)
	logWindow.Show()
}

// tailOfFile returns the last n lines of the file at path, or a one-line
// notice when the file cannot be read.
func tailOfFile(path string, n int) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Cannot read log file: %v", err)}
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
