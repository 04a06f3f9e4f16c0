package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/slimetrain"
)

// ThrownTint is the color thrown slimes fade to.
var ThrownTint = Color{R: 1, G: 0.75, B: 0.55, A: 1}

const (
	popInDuration = 0.25
	tintDuration  = 0.3
)

type memberNode struct {
	node   *Node
	thrown bool
}

// ChainView mirrors a simulation's members into scene nodes. Every member
// shows the leader's sheet and flip; followers are drawn at SlimeScale of
// the leader's size and pop in when spawned.
type ChainView struct {
	scene  *Scene
	sheets *SheetSet

	leaderScale   float64
	followerScale float64
	fps           float64

	nodes map[slimetrain.MemberID]*memberNode
	live  map[slimetrain.MemberID]struct{}
}

// NewChainView creates a view drawing into scene. sheets may be nil, in
// which case nodes are tracked but have no frames.
func NewChainView(scene *Scene, sheets *SheetSet, cfg slimetrain.Config) *ChainView {
	leaderScale := 1.0
	if sz := sheets.Size(); sz > 0 {
		leaderScale = cfg.LeaderSize / float64(sz)
	}
	return &ChainView{
		scene:         scene,
		sheets:        sheets,
		leaderScale:   leaderScale,
		followerScale: leaderScale * cfg.SlimeScale,
		fps:           cfg.AnimationFPS,
		nodes:         make(map[slimetrain.MemberID]*memberNode),
		live:          make(map[slimetrain.MemberID]struct{}),
	}
}

// Node returns the node drawn for a member.
func (v *ChainView) Node(id slimetrain.MemberID) (*Node, bool) {
	mn, ok := v.nodes[id]
	if !ok {
		return nil, false
	}
	return mn.node, true
}

// Len returns the number of members with a node.
func (v *ChainView) Len() int {
	return len(v.nodes)
}

// Sync creates nodes for new members, copies positions and orientation,
// tints thrown members, and disposes nodes of despawned ones.
func (v *ChainView) Sync(sim *slimetrain.Sim) {
	orient := sim.Orientation()
	frames := v.sheets.Frames(orient.Facing)
	clear(v.live)

	for m := range sim.Chain().Members() {
		v.live[m.ID] = struct{}{}
		mn, ok := v.nodes[m.ID]
		if !ok {
			mn = v.add(m, frames)
		}
		n := mn.node
		n.X, n.Y = m.Position.X, m.Position.Y
		n.FlipX = orient.FlipX
		n.SetFrames(frames)

		if m.Thrown() && !mn.thrown {
			mn.thrown = true
			v.scene.AddTween(TweenColor(n, ThrownTint, tintDuration, ease.Linear))
		}
	}

	for id, mn := range v.nodes {
		if _, ok := v.live[id]; !ok {
			mn.node.Dispose()
			delete(v.nodes, id)
		}
	}
}

func (v *ChainView) add(m *slimetrain.Member, frames []*ebiten.Image) *memberNode {
	n := NewSprite(fmt.Sprintf("slime-%d", m.ID), frames)
	n.Anim = NewAnimator(v.fps)
	if m.Leader {
		n.Name = fmt.Sprintf("leader-%d", m.ID)
		n.ScaleX, n.ScaleY = v.leaderScale, v.leaderScale
	} else {
		n.ScaleX, n.ScaleY = 0, 0
		v.scene.AddTween(TweenScale(n, v.followerScale, v.followerScale, popInDuration, ease.OutBack))
	}
	v.scene.Add(n)
	mn := &memberNode{node: n}
	v.nodes[m.ID] = mn
	return mn
}
