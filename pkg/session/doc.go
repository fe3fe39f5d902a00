// Package session holds the interaction state of one perceptron chart.
//
// A Session owns the placed points, the committed ideal line and the current
// training lines. Front-ends forward raw pointer input in pixel coordinates
// (SurfaceClicked, DragStart, DragMove, DragEnd) together with the button
// actions (ToggleMode, Reset, BrushMoved, GenerateTrainingLines). Every
// handler runs to completion under the session lock, returns the events it
// produced and then delivers them to the subscribed observers.
//
// Points are labeled with the cross-product half-plane test against the
// ideal line, in domain space, and only when a new ideal line is committed.
// Training lines are never used for labeling.
package session
