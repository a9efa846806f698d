//go:build cgo
// +build cgo

package client

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/zokiio/localvoice/internal/session"
)

// GUI is the chat window: channel tree on the left, voice activity and
// channel chat on the right. Every handler runs on the Fyne UI thread.
type GUI struct {
	myApp fyne.App
	win   fyne.Window
	cfg   WindowConfig
	state *session.Session
	tree  *session.Tree

	// UI Elements
	serverInput   *widget.Entry
	nicknameInput *widget.Entry
	connectBtn    *widget.Button
	disconnectBtn *widget.Button
	channelTree   *widget.Tree
	activity      *activityLog
	chat          *chatPanel
	hostCheck     *widget.Check
	muteBtn       *widget.Button
	deafenBtn     *widget.Button
	settingsBtn   *widget.Button
}

// NewGUI creates a new GUI instance
func NewGUI(cfg WindowConfig) *GUI {
	return &GUI{
		cfg:   cfg,
		state: session.New(),
		tree:  session.NewTree(session.Channels),
	}
}

// Run starts the GUI application and blocks until the window closes.
func (gui *GUI) Run() {
	gui.start(app.NewWithID(gui.cfg.AppID))
	gui.win.ShowAndRun()
}

func (gui *GUI) start(a fyne.App) {
	gui.myApp = a
	applyTheme(a, gui.cfg.ThemeName)
	a.SetIcon(theme.VolumeUpIcon())

	gui.win = a.NewWindow(gui.cfg.Title)
	gui.win.SetMaster()
	gui.setupUI()
	gui.win.Resize(gui.cfg.Size)
	gui.win.CenterOnScreen()
}

func (gui *GUI) setupUI() {
	// Connection bar
	gui.serverInput = widget.NewEntry()
	gui.serverInput.SetText("localhost")
	gui.nicknameInput = widget.NewEntry()
	gui.nicknameInput.SetText("GuestUser")
	gui.connectBtn = widget.NewButton("Connect", gui.onConnectClicked)
	gui.disconnectBtn = widget.NewButton("Disconnect", gui.onDisconnectClicked)
	gui.disconnectBtn.Importance = widget.LowImportance

	topBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(gui.connectBtn, gui.disconnectBtn),
		container.NewGridWithColumns(4,
			widget.NewLabel("Server:"), gui.serverInput,
			widget.NewLabel("Nickname:"), gui.nicknameInput,
		),
	)

	// Channel tree
	gui.channelTree = widget.NewTree(
		func(id widget.TreeNodeID) []widget.TreeNodeID {
			return gui.tree.Children(id)
		},
		func(id widget.TreeNodeID) bool {
			return gui.tree.IsBranch(id)
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(gui.tree.Label(id))
		},
	)
	gui.channelTree.OpenBranch(gui.tree.ServerID())
	if id, ok := gui.tree.NodeFor(gui.state.Current()); ok {
		// Highlight the starting channel before the handler is attached so
		// startup does not log a join notice.
		gui.channelTree.Select(id)
	}
	gui.channelTree.OnSelected = gui.onNodeSelected

	left := container.NewBorder(headerLabel("Servers & Channels"), nil, nil, nil, gui.channelTree)

	// Voice activity
	gui.activity = newActivityLog(gui.state.Activity())
	gui.hostCheck = widget.NewCheck("Host mode", gui.onHostModeChanged)
	activityBox := container.NewBorder(
		container.NewBorder(nil, nil, headerLabel("Voice Activity"), gui.hostCheck),
		nil, nil, nil,
		gui.activity.list,
	)

	// Channel chat
	gui.chat = newChatPanel(gui.submit)
	gui.chat.render(gui.state.Current(), gui.state.Transcript(gui.state.Current()))

	gui.muteBtn = widget.NewButton("Mute Mic", gui.onMuteClicked)
	gui.deafenBtn = widget.NewButton("Deafen", gui.onDeafenClicked)
	gui.settingsBtn = widget.NewButton("Settings", nil)
	gui.settingsBtn.Disable()
	controls := container.NewBorder(nil, nil,
		container.NewHBox(gui.muteBtn, gui.deafenBtn), gui.settingsBtn,
	)

	chatBox := container.NewBorder(
		container.NewHBox(headerLabel("Channel Chat"), gui.chat.header),
		container.NewVBox(gui.chat.inputRow(), controls),
		nil, nil,
		gui.chat.list,
	)

	right := container.NewVSplit(
		container.NewPadded(activityBox),
		container.NewPadded(chatBox),
	)
	right.Offset = 0.6

	mainSplit := container.NewHSplit(container.NewPadded(left), right)
	mainSplit.Offset = 2.0 / 7.0

	// Fyne windows have no minimum size setting; a transparent spacer
	// keeps the content from shrinking below it.
	minSpacer := canvas.NewRectangle(color.Transparent)
	minSpacer.SetMinSize(gui.cfg.MinSize)

	content := container.NewBorder(topBar, nil, nil, nil, mainSplit)
	gui.win.SetContent(container.NewPadded(container.NewStack(minSpacer, content)))
}

func (gui *GUI) onNodeSelected(uid widget.TreeNodeID) {
	name, ok := gui.tree.Lookup(uid)
	if !ok {
		return
	}
	gui.selectChannel(name)
}

func (gui *GUI) selectChannel(name string) {
	if _, ok := gui.state.Select(name); !ok {
		return
	}
	gui.chat.render(name, gui.state.Transcript(name))
	gui.refreshActivity()
}

// submit posts the typed text to the current channel. Blank input leaves
// the entry and every transcript untouched.
func (gui *GUI) submit(text string) {
	if _, ok := gui.state.Submit(text); !ok {
		return
	}
	gui.chat.input.SetText("")
	current := gui.state.Current()
	gui.chat.render(current, gui.state.Transcript(current))
}

func (gui *GUI) onHostModeChanged(on bool) {
	if _, ok := gui.state.SetHostMode(on); ok {
		gui.refreshActivity()
	}
}

func (gui *GUI) onConnectClicked() {
	gui.state.RequestConnect(gui.nicknameInput.Text, gui.serverInput.Text)
	gui.refreshActivity()
}

func (gui *GUI) onDisconnectClicked() {
	gui.state.RequestDisconnect()
	gui.refreshActivity()
}

func (gui *GUI) onMuteClicked() {
	gui.state.ToggleMute()
	if gui.state.Muted() {
		gui.muteBtn.SetText("Unmute Mic")
	} else {
		gui.muteBtn.SetText("Mute Mic")
	}
	gui.refreshActivity()
}

func (gui *GUI) onDeafenClicked() {
	gui.state.ToggleDeafen()
	if gui.state.Deafened() {
		gui.deafenBtn.SetText("Undeafen")
	} else {
		gui.deafenBtn.SetText("Deafen")
	}
	gui.refreshActivity()
}

// refreshActivity redraws the activity view from the session's log.
func (gui *GUI) refreshActivity() {
	gui.activity.sync(gui.state.Activity())
}
