// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package resumemodal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateMachine(t *testing.T) {
	m := New()
	assert.Equal(t, Closed, m.State())
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.View(80, 24))

	m = m.Open("https://cdn.example.com/a.png")
	assert.True(t, m.IsOpen())
	assert.Equal(t, "https://cdn.example.com/a.png", m.URL())

	m = m.Close()
	assert.False(t, m.IsOpen())
	assert.Equal(t, "https://cdn.example.com/a.png", m.URL(), "url is retained after close")
	assert.Empty(t, m.View(80, 24))

	m = m.Open("https://cdn.example.com/b.pdf")
	assert.True(t, m.IsOpen())
	assert.Equal(t, "https://cdn.example.com/b.pdf", m.URL())
}

func TestOpenTwiceReplacesURL(t *testing.T) {
	m := New().Open("one").Open("two")
	assert.True(t, m.IsOpen())
	assert.Equal(t, "two", m.URL())
}

func TestView(t *testing.T) {
	view := New().Open("https://cdn.example.com/cv.pdf").View(100, 30)
	assert.Contains(t, view, "Resume")
	assert.Contains(t, view, "PDF document")
	assert.Contains(t, view, "https://cdn.example.com/cv.pdf")

	view = New().Open("https://cdn.example.com/cv.png").View(100, 30)
	assert.Contains(t, view, "Image")

	view = New().Open("").View(100, 30)
	assert.Contains(t, view, "(no resume url)")
}
