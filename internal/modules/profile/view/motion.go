package view

import (
	"fmt"
	"strings"
	"time"
)

// Spring describes a spring transition.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// Settle approximates how long a unit-mass spring takes to come to rest.
func (s Spring) Settle() time.Duration {
	if s.Damping <= 0 {
		return 0
	}
	return time.Duration(8 / s.Damping * float64(time.Second))
}

// Frame is one animation state.
type Frame struct {
	Opacity float64
	Y       int
}

func (f Frame) css() string {
	return fmt.Sprintf("opacity:%g;transform:translateY(%dpx)", f.Opacity, f.Y)
}

// Variants is a named pair of animation states and the transition between them.
type Variants struct {
	Hidden     Frame
	Visible    Frame
	Transition Spring
	// Stagger delays each child's entrance after the previous one.
	Stagger time.Duration
}

// Entrance variants of the profile card.
var (
	ContainerVariants = Variants{
		Hidden:     Frame{Opacity: 0, Y: 50},
		Visible:    Frame{Opacity: 1, Y: 0},
		Transition: Spring{Stiffness: 100, Damping: 15},
		Stagger:    200 * time.Millisecond,
	}
	ItemVariants = Variants{
		Hidden:     Frame{Opacity: 0, Y: 20},
		Visible:    Frame{Opacity: 1, Y: 0},
		Transition: Spring{Stiffness: 100, Damping: 10},
	}
)

// keyframes renders v as a CSS @keyframes rule named name.
func (v Variants) keyframes(name string) string {
	return fmt.Sprintf("@keyframes %s{from{%s}to{%s}}", name, v.Hidden.css(), v.Visible.css())
}

// motionCSS is the stylesheet of the entrance animation. Container children
// start after the container settles, one Stagger apart.
func motionCSS(items int) string {
	var b strings.Builder
	b.WriteString(ContainerVariants.keyframes("profile-container-in"))
	b.WriteString(ItemVariants.keyframes("profile-item-in"))

	container := ContainerVariants.Transition.Settle()
	fmt.Fprintf(&b, ".motion-container{animation:profile-container-in %dms ease-out both}", container.Milliseconds())
	for i := 0; i < items; i++ {
		delay := container + time.Duration(i)*ContainerVariants.Stagger
		fmt.Fprintf(&b, ".motion-item-%d{animation:profile-item-in %dms ease-out %dms both}",
			i, ItemVariants.Transition.Settle().Milliseconds(), delay.Milliseconds())
	}
	return b.String()
}
