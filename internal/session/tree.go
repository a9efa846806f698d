package session

import (
	"github.com/google/uuid"
)

const ServerLabel = "Local Server"

// Tree is the server/channel hierarchy shown in the sidebar. Node ids are
// opaque strings; the root id is the empty string so it can be handed to
// a widget.Tree directly.
type Tree struct {
	serverID string
	leaves   []string
	byID     map[string]string
	byName   map[string]string
}

// NewTree builds a tree with one server node and one leaf per channel name.
func NewTree(channels []string) *Tree {
	t := &Tree{
		serverID: uuid.NewString(),
		byID:     make(map[string]string, len(channels)),
		byName:   make(map[string]string, len(channels)),
	}
	for _, name := range channels {
		id := uuid.NewString()
		t.leaves = append(t.leaves, id)
		t.byID[id] = name
		t.byName[name] = id
	}
	return t
}

func (t *Tree) Root() string {
	return ""
}

func (t *Tree) ServerID() string {
	return t.serverID
}

// Children returns the child ids of a node. Leaves have none.
func (t *Tree) Children(id string) []string {
	switch id {
	case "":
		return []string{t.serverID}
	case t.serverID:
		out := make([]string, len(t.leaves))
		copy(out, t.leaves)
		return out
	}
	return nil
}

func (t *Tree) IsBranch(id string) bool {
	return id == "" || id == t.serverID
}

// Label is the display text of a node.
func (t *Tree) Label(id string) string {
	if id == t.serverID {
		return ServerLabel
	}
	return t.byID[id]
}

// Lookup maps a selected node id to its channel. The server node and
// unknown ids report ok=false.
func (t *Tree) Lookup(id string) (string, bool) {
	name, ok := t.byID[id]
	return name, ok
}

func (t *Tree) NodeFor(name string) (string, bool) {
	id, ok := t.byName[name]
	return id, ok
}
