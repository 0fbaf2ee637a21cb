package wallet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

// StaticPrompt answers every prompt with fixed values. An empty Secret declines
// the connect prompt.
type StaticPrompt struct {
	Secret  string
	Approve bool
}

func (p StaticPrompt) Passphrase(context.Context, common.Address) (string, error) {
	if p.Secret == "" {
		return "", ErrPromptDeclined
	}
	return p.Secret, nil
}

func (p StaticPrompt) Confirm(common.Address, *types.Transaction) (bool, error) {
	return p.Approve, nil
}

// TerminalPrompt asks on out and reads answers line by line from in.
type TerminalPrompt struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompt builds a TerminalPrompt.
func NewTerminalPrompt(in io.Reader, out io.Writer) *TerminalPrompt {
	return &TerminalPrompt{in: bufio.NewReader(in), out: out}
}

func (p *TerminalPrompt) Passphrase(ctx context.Context, account common.Address) (string, error) {
	line, err := p.ask(ctx, fmt.Sprintf("Passphrase to connect %s (empty to reject): ", account))
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", ErrPromptDeclined
	}
	return line, nil
}

func (p *TerminalPrompt) Confirm(account common.Address, tx *types.Transaction) (bool, error) {
	value, _ := uint256.FromBig(tx.Value())
	question := fmt.Sprintf("Sign transaction from %s to %s sending %s ETH (max fee %s gwei)? [y/N]: ",
		account, tx.To(), model.FormatEther(value), gweiOf(tx))
	line, err := p.ask(context.Background(), question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *TerminalPrompt) ask(ctx context.Context, question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func gweiOf(tx *types.Transaction) string {
	fee, overflow := uint256.FromBig(tx.GasFeeCap())
	if overflow {
		return "?"
	}
	return new(uint256.Int).Div(fee, uint256.NewInt(params.GWei)).Dec()
}
