package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daniloc96/group-console/internal/interfaces"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var isTerminal = term.IsTerminal // mockable

// Popover presents menus and confirm dialogs on a terminal. When input is
// not a terminal every popover resolves as dismissed.
type Popover struct {
	in          *bufio.Reader
	out         io.Writer
	translator  interfaces.Translator
	interactive bool
}

// NewPopover reads answers from in and writes prompts to out. fd is the
// descriptor behind in, used to detect an interactive terminal.
func NewPopover(in io.Reader, out io.Writer, fd int, translator interfaces.Translator) *Popover {
	return &Popover{
		in:          bufio.NewReader(in),
		out:         out,
		translator:  translator,
		interactive: isTerminal(fd),
	}
}

// PresentMenu lists the items and reads a choice by number or tag. An empty
// answer dismisses the menu.
func (p *Popover) PresentMenu(ctx context.Context, req models.MenuRequest) (*models.PopoverResult, error) {
	if !p.interactive {
		logrus.Warn("⚠ Not a terminal, menu dismissed (use --select for headless runs)")
		return nil, nil
	}

	if req.Title != "" {
		fmt.Fprintln(p.out, p.translator.TranslateMessage(req.Title, nil))
	}
	for i, item := range req.Items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, p.translator.TranslateMessage(string(item), nil))
	}
	fmt.Fprint(p.out, "Select an option (empty to cancel): ")

	answer, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil {
		if n < 1 || n > len(req.Items) {
			return &models.PopoverResult{}, nil
		}
		return &models.PopoverResult{SelectedItem: req.Items[n-1]}, nil
	}
	return &models.PopoverResult{SelectedItem: models.MenuTag(strings.ToUpper(answer))}, nil
}

// PresentConfirm shows the dialog and treats "y" or "yes" as the left button.
func (p *Popover) PresentConfirm(ctx context.Context, req models.ConfirmRequest) (*models.PopoverResult, error) {
	if !p.interactive {
		logrus.Warn("⚠ Not a terminal, confirmation dismissed")
		return nil, nil
	}

	fmt.Fprintf(p.out, "\n%s\n", req.Title)
	if req.Description != "" {
		fmt.Fprintf(p.out, "%s\n", req.Description)
	}
	fmt.Fprintf(p.out, "%s / %s [y/N]: ", req.ButtonLabel, p.translator.TranslateMessage("CANCEL", nil))

	answer, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return &models.PopoverResult{IsLeftButtonClicked: true}, nil
	case "":
		return nil, nil
	default:
		return &models.PopoverResult{IsLeftButtonClicked: false}, nil
	}
}

// readLine returns the next trimmed line. EOF with no data is an empty answer.
func (p *Popover) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AutoPopover answers every popover without user input. It backs headless
// runs where the action to take is known up front.
type AutoPopover struct {
	Select  models.MenuTag
	Confirm bool
}

func (a AutoPopover) PresentMenu(ctx context.Context, req models.MenuRequest) (*models.PopoverResult, error) {
	if a.Select == "" {
		return nil, nil
	}
	logrus.WithField("selected", a.Select).Debug("Auto-selecting menu item")
	return &models.PopoverResult{SelectedItem: a.Select}, nil
}

func (a AutoPopover) PresentConfirm(ctx context.Context, req models.ConfirmRequest) (*models.PopoverResult, error) {
	logrus.WithFields(logrus.Fields{"title": req.Title, "confirmed": a.Confirm}).Debug("Auto-answering confirmation")
	return &models.PopoverResult{IsLeftButtonClicked: a.Confirm}, nil
}
