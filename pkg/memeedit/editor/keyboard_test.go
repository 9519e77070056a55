package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardAvoidance(t *testing.T) {
	tests := []struct {
		name   string
		steps  func(k *KeyboardAvoidance)
		offset float64
	}{
		{
			name:   "show twice shifts once",
			steps:  func(k *KeyboardAvoidance) { k.Show(216, true); k.Show(216, true) },
			offset: 216,
		},
		{
			name:   "hide without shift is ignored",
			steps:  func(k *KeyboardAvoidance) { k.Hide(216, true); k.Hide(216, true) },
			offset: 0,
		},
		{
			name:   "show then hide",
			steps:  func(k *KeyboardAvoidance) { k.Show(216, true); k.Hide(216, true) },
			offset: 0,
		},
		{
			name:   "top field ignored",
			steps:  func(k *KeyboardAvoidance) { k.Show(216, false) },
			offset: 0,
		},
		{
			name:   "hide while top active keeps shift",
			steps:  func(k *KeyboardAvoidance) { k.Show(216, true); k.Hide(216, false) },
			offset: 216,
		},
		{
			name:   "larger hide clamps at zero",
			steps:  func(k *KeyboardAvoidance) { k.Show(216, true); k.Hide(300, true) },
			offset: 0,
		},
		{
			name:   "smaller hide leaves remainder",
			steps:  func(k *KeyboardAvoidance) { k.Show(216, true); k.Hide(100, true); k.Show(216, true) },
			offset: 116,
		},
		{
			name:   "zero height ignored",
			steps:  func(k *KeyboardAvoidance) { k.Show(0, true) },
			offset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &KeyboardAvoidance{}
			tt.steps(k)
			assert.Equal(t, tt.offset, k.Offset())
		})
	}
}

func TestKeyboardAvoidance_ReportsChanges(t *testing.T) {
	k := &KeyboardAvoidance{}
	assert.True(t, k.Show(216, true))
	assert.False(t, k.Show(216, true))
	assert.True(t, k.Hide(216, true))
	assert.False(t, k.Hide(216, true))
}
