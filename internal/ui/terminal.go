package ui

import (
	"context"
	"fmt"
	"os"
)

type terminalUI struct{}

func NewTerminal() Interface {
	return &terminalUI{}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintWarning(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, "Attention : "+s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, "Erreur : "+s)
}

func (t *terminalUI) PrintSummary(ctx context.Context, s Summary) {
	fmt.Println(renderSummaryTable(s))
}
