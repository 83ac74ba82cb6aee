package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
)

// DetailOps shows full artwork records in the ov pager.
type DetailOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewDetailOps creates a new detail operations instance
func NewDetailOps() *DetailOps {
	return &DetailOps{}
}

// SetProgram sets the program reference for terminal management
func (d *DetailOps) SetProgram(p *tea.Program) {
	d.program = p
}

// ShowArtwork pages one artwork record using ov. The terminal is handed
// over to the pager and restored when it exits.
func (d *DetailOps) ShowArtwork(art domain.Artwork) error {
	if d.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := d.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = d.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(renderArtworkDetail(art))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// renderArtworkDetail formats one artwork as plain pager text.
func renderArtworkDetail(art domain.Artwork) string {
	title := art.Title
	if title == "" {
		title = fmt.Sprintf("Artwork %d", art.ID)
	}

	b := &strings.Builder{}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(title)))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			value = "(not recorded)"
		}
		fmt.Fprintf(b, "%-8s %s\n", label+":", value)
	}
	writeField("ID", strconv.Itoa(art.ID))
	writeField("Artist", art.ArtistDisplay)
	writeField("Origin", art.PlaceOfOrigin)
	writeField("Dates", formatDates(art.DateStart, art.DateEnd))

	b.WriteString("\nInscriptions\n------------\n")
	if art.Inscriptions == "" {
		b.WriteString("(none recorded)\n")
	} else {
		b.WriteString(art.Inscriptions)
		b.WriteString("\n")
	}

	return b.String()
}
