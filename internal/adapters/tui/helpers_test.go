package tui_test

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/engine/session"
)

// provinces is
//
//	Zhejiang ─ Hangzhou ─ Xihu, Lingyin
//	         └ Ningbo
//	Jiangsu ─ Nanjing ─ Zhonghuamen (disabled)
func provinces() []domain.Option {
	gate := domain.NewOption("zhonghuamen", "Zhonghuamen")
	gate.Disabled = true
	return []domain.Option{
		domain.NewOption("zhejiang", "Zhejiang",
			domain.NewOption("hangzhou", "Hangzhou",
				domain.NewOption("xihu", "Xihu"),
				domain.NewOption("lingyin", "Lingyin"),
			),
			domain.NewOption("ningbo", "Ningbo"),
		),
		domain.NewOption("jiangsu", "Jiangsu",
			domain.NewOption("nanjing", "Nanjing", gate),
		),
	}
}

func keys(ss ...string) []domain.Key {
	out := make([]domain.Key, len(ss))
	for i, s := range ss {
		out[i] = domain.StringKey(s)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds msgs to m in order and returns the last command.
func send(m tea.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func committed(s *session.Session) session.Change {
	return s.Engine().Committed(s.State())
}
