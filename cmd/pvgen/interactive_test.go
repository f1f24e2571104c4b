package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/xpulp-testgen/driver"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *interactiveModel, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func newTestModel(t *testing.T) *interactiveModel {
	t.Helper()
	vs, err := driver.Select([]string{"pv.avg.h", "pv.avg.sci.b"})
	require.NoError(t, err)
	return newInteractiveModel(newDriver(t), vs)
}

func TestInteractiveSelect(t *testing.T) {
	m := newTestModel(t)

	send(t, m, key(tea.KeyUp))
	assert.Equal(t, 0, m.selected)
	send(t, m, key(tea.KeyDown))
	send(t, m, key(tea.KeyDown))
	assert.Equal(t, 1, m.selected, "cursor stops at the last variant")
	send(t, m, runes("k"))
	assert.Equal(t, 0, m.selected)

	cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestInteractiveEvaluate(t *testing.T) {
	m := newTestModel(t)

	send(t, m, key(tea.KeyEnter))
	require.Equal(t, stateInputOperands, m.state)
	require.Len(t, m.inputs, 2)
	assert.Equal(t, "src2: ", m.inputs[1].Prompt)

	send(t, m, runes("0x7f7e7d7c"))
	send(t, m, key(tea.KeyTab))
	send(t, m, runes("0x7b7a7978"))
	assert.Equal(t, "0x7f7e7d7c", m.inputs[0].Value())
	assert.Equal(t, "0x7b7a7978", m.inputs[1].Value())

	cmd := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	send(t, m, cmd())

	require.Equal(t, stateShowResult, m.state)
	require.NoError(t, m.err)
	assert.Equal(t, "TEST_RR_OP(2, pv.avg.h, 0x7d7c7b7a, 0x7f7e7d7c, 0x7b7a7978)", m.eval.line)
	assert.Contains(t, m.View(), "0x7d7c7b7a")

	send(t, m, key(tea.KeyEnter))
	assert.Equal(t, stateSelectVariant, m.state)
	assert.Nil(t, m.eval)
	assert.Nil(t, m.inputs)
}

func TestInteractiveTypingQDoesNotQuit(t *testing.T) {
	m := newTestModel(t)

	send(t, m, key(tea.KeyDown))
	send(t, m, key(tea.KeyEnter))
	require.Equal(t, stateInputOperands, m.state)
	assert.Equal(t, "imm1: ", m.inputs[1].Prompt)

	send(t, m, runes("q"))
	assert.Equal(t, stateInputOperands, m.state)
	assert.Equal(t, "q", m.inputs[0].Value())

	send(t, m, key(tea.KeyEsc))
	assert.Equal(t, stateSelectVariant, m.state)
	assert.Nil(t, m.inputs)
}

func TestInteractiveShowsErrors(t *testing.T) {
	m := newTestModel(t)

	send(t, m, key(tea.KeyDown))
	send(t, m, key(tea.KeyEnter))
	send(t, m, runes("1"))
	send(t, m, key(tea.KeyTab))
	send(t, m, runes("40"))

	cmd := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	send(t, m, cmd())

	require.Equal(t, stateShowResult, m.state)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")

	send(t, m, key(tea.KeyEsc))
	assert.Equal(t, stateSelectVariant, m.state)
	assert.NoError(t, m.err)
}
