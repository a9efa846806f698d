//go:build cgo
// +build cgo

package client

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

func headerLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// newLineList shows a bound list of strings, one label per line.
func newLineList(lines binding.StringList) *widget.List {
	return widget.NewListWithData(lines,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
}

// activityLog is the read-only voice activity view. The session owns the
// lines; the view is only ever replaced from them.
type activityLog struct {
	lines binding.StringList
	list  *widget.List
}

func newActivityLog(seed []string) *activityLog {
	a := &activityLog{lines: binding.NewStringList()}
	a.list = newLineList(a.lines)
	a.sync(seed)
	return a
}

// sync shows lines and scrolls to the newest one. A failed update is fixed
// by the next sync.
func (a *activityLog) sync(lines []string) {
	if err := a.lines.Set(lines); err != nil {
		log.Printf("Activity log update failed: %v", err)
		return
	}
	a.list.ScrollToBottom()
}

// chatPanel shows one channel's transcript plus the message input row.
type chatPanel struct {
	header  *widget.Label
	lines   binding.StringList
	list    *widget.List
	input   *widget.Entry
	sendBtn *widget.Button
}

func newChatPanel(onSubmit func(string)) *chatPanel {
	p := &chatPanel{
		header: headerLabel(""),
		lines:  binding.NewStringList(),
		input:  widget.NewEntry(),
	}
	p.list = newLineList(p.lines)
	p.input.SetPlaceHolder("Type a message")
	p.input.OnSubmitted = onSubmit
	p.sendBtn = widget.NewButton("Send", func() {
		onSubmit(p.input.Text)
	})
	return p
}

// render replaces the visible transcript with the given lines.
func (p *chatPanel) render(channel string, transcript []string) {
	p.header.SetText("#" + channel)
	if err := p.lines.Set(transcript); err != nil {
		log.Printf("Chat render for %s failed: %v", channel, err)
		return
	}
	p.list.ScrollToBottom()
}

func (p *chatPanel) inputRow() fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, p.sendBtn, p.input)
}
