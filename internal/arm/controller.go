// Package arm provides high-level LeArm operations (button presses, dial
// turns, homing) on top of the device transport and the taught-position
// store.
package arm

import (
	"context"
	"fmt"
	"sort"
	"time"

	"armpress/internal/device"
	"armpress/internal/logging"
	"armpress/internal/positions"
)

const (
	// gripperServo opens and closes the gripper; used to release a dial.
	gripperServo = 1
	// pressServo dips the wrist to push a button.
	pressServo = 5

	// gripMoveTime is how long gripper open/close movements take.
	gripMoveTime = 500 * time.Millisecond
	// gripSettle is the pause after a gripper movement.
	gripSettle = 800 * time.Millisecond
	// settleSlack is added on top of a movement duration before the next
	// command, so the arm physically arrives first.
	settleSlack = 500 * time.Millisecond

	// DefaultMoveTime is the default duration for positioning movements.
	DefaultMoveTime = time.Second
)

// HomePose returns the safe neutral position for the arm.
func HomePose() positions.Pose {
	return positions.Pose{1: 80, 2: 90, 3: 180, 4: 130, 5: 90, 6: 70}
}

// Controller drives the arm through taught positions.
type Controller struct {
	client   device.Client
	store    *positions.Store
	moveTime time.Duration
	sleep    func(time.Duration)
}

// Options holds configuration for creating a Controller. This struct enables
// test-friendly construction with explicit dependencies.
type Options struct {
	Client   device.Client
	Store    *positions.Store
	MoveTime time.Duration       // Optional: defaults to DefaultMoveTime
	Sleep    func(time.Duration) // Optional: defaults to time.Sleep
}

// New creates a Controller with default options.
func New(client device.Client, store *positions.Store) *Controller {
	return NewWithOptions(Options{Client: client, Store: store})
}

// NewWithOptions creates a Controller with explicit options.
func NewWithOptions(opts Options) *Controller {
	moveTime := opts.MoveTime
	if moveTime <= 0 {
		moveTime = DefaultMoveTime
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Controller{
		client:   opts.Client,
		store:    opts.Store,
		moveTime: moveTime,
		sleep:    sleep,
	}
}

// MoveToAngles commands all servos in the pose to their angles over the
// given duration. Servos are sent in id order so identical poses produce
// identical commands.
func (c *Controller) MoveToAngles(ctx context.Context, pose positions.Pose, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(pose) == 0 {
		return fmt.Errorf("empty pose")
	}

	ids := make([]int, 0, len(pose))
	for id := range pose {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	moves := make([]device.ServoMove, 0, len(ids))
	for _, id := range ids {
		moves = append(moves, device.ServoMove{ID: id, Angle: pose[id]})
	}
	return c.client.MoveServos(moves, duration)
}

// GoHome moves the arm to the home position and waits for it to arrive.
func (c *Controller) GoHome(ctx context.Context) error {
	logging.Debug("returning to home position")
	if err := c.MoveToAngles(ctx, HomePose(), c.moveTime); err != nil {
		return fmt.Errorf("failed to move home: %w", err)
	}
	c.sleep(c.moveTime)
	return nil
}

// PressButton moves to the taught position for name, dips the press servo by
// depth degrees for the hold duration, and optionally returns home.
func (c *Controller) PressButton(ctx context.Context, name string, depth float64, hold time.Duration, returnHome bool) error {
	pose, err := c.store.Get(name)
	if err != nil {
		return err
	}

	log := logging.With("button", name)
	log.Debug("moving to button position")
	if err := c.MoveToAngles(ctx, pose, c.moveTime); err != nil {
		return fmt.Errorf("failed to move to %s: %w", name, err)
	}
	c.sleep(c.moveTime + settleSlack)

	angle, ok := pose[pressServo]
	if !ok {
		return fmt.Errorf("position %s has no angle for servo %d", name, pressServo)
	}

	pressPose := pose.Clone()
	pressPose[pressServo] = angle - depth

	log.Debug("pressing", "servo", pressServo, "from", angle, "to", pressPose[pressServo])
	if err := c.MoveToAngles(ctx, pressPose, hold); err != nil {
		return fmt.Errorf("failed to press %s: %w", name, err)
	}
	c.sleep(hold + settleSlack)

	if returnHome {
		return c.GoHome(ctx)
	}
	return nil
}

// TurnDial grips and turns the dial named name, using the three taught
// positions <name>_open, <name>_closed and <name>_turned, then releases.
func (c *Controller) TurnDial(ctx context.Context, name string, turnTime time.Duration, returnHome bool) error {
	open, err := c.dialPose(name, "open")
	if err != nil {
		return err
	}
	closed, err := c.dialPose(name, "closed")
	if err != nil {
		return err
	}
	turned, err := c.dialPose(name, "turned")
	if err != nil {
		return err
	}

	log := logging.With("dial", name)

	log.Debug("moving to dial with gripper open")
	if err := c.MoveToAngles(ctx, open, c.moveTime); err != nil {
		return fmt.Errorf("failed to approach dial %s: %w", name, err)
	}
	c.sleep(c.moveTime + settleSlack)

	log.Debug("closing gripper")
	if err := c.MoveToAngles(ctx, closed, gripMoveTime); err != nil {
		return fmt.Errorf("failed to grip dial %s: %w", name, err)
	}
	c.sleep(gripSettle)

	log.Debug("turning dial")
	if err := c.MoveToAngles(ctx, turned, turnTime); err != nil {
		return fmt.Errorf("failed to turn dial %s: %w", name, err)
	}
	c.sleep(turnTime + settleSlack)

	// Release by reopening the gripper while holding the turned pose.
	release := turned.Clone()
	if openAngle, ok := open[gripperServo]; ok {
		release[gripperServo] = openAngle
	}
	log.Debug("releasing dial")
	if err := c.MoveToAngles(ctx, release, gripMoveTime); err != nil {
		return fmt.Errorf("failed to release dial %s: %w", name, err)
	}
	c.sleep(gripSettle)

	if returnHome {
		return c.GoHome(ctx)
	}
	return nil
}

// dialPose loads one of the three taught positions for a dial.
func (c *Controller) dialPose(name, phase string) (positions.Pose, error) {
	pose, err := c.store.Get(name + "_" + phase)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w (teach all three dial positions)", name, err)
	}
	return pose, nil
}
