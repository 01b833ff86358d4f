package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
    // unread <-> processed 双向可逆
    assert.True(t, CanTransition(StatusUnread, StatusProcessed))
    assert.True(t, CanTransition(StatusProcessed, StatusUnread))

    // 回复动作可从任一非终态进入 replied
    assert.True(t, CanTransition(StatusUnread, StatusReplied))
    assert.True(t, CanTransition(StatusProcessed, StatusReplied))

    // replied 为终态
    assert.False(t, CanTransition(StatusReplied, StatusUnread))
    assert.False(t, CanTransition(StatusReplied, StatusProcessed))

    // 幂等标记
    assert.True(t, CanTransition(StatusProcessed, StatusProcessed))
    assert.True(t, CanTransition(StatusReplied, StatusReplied))
}

func TestStatusValidAndLabel(t *testing.T) {
    assert.True(t, StatusUnread.Valid())
    assert.True(t, StatusProcessed.Valid())
    assert.True(t, StatusReplied.Valid())
    assert.False(t, Status("archived").Valid())

    assert.Equal(t, "Unread", StatusUnread.Label())
    assert.Equal(t, "Processed", StatusProcessed.Label())
    assert.Equal(t, "Replied", StatusReplied.Label())
}
