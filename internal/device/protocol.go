package device

import "time"

// LewanSoul/Hiwonder servo controller protocol constants.
const (
	frameHeader = 0x55

	cmdServoMove        = 0x03
	cmdActionGroupRun   = 0x06
	cmdActionGroupStop  = 0x07
	cmdActionGroupSpeed = 0x0B
)

// reportSize is the fixed HID report size for the LeArm controller. The first
// byte is the report id (always zero), leaving 63 bytes of payload.
const reportSize = 64

// ServoMove describes a single servo's target for one move command.
type ServoMove struct {
	ID    int     // servo id, 1-6 on the LeArm
	Angle float64 // degrees, 0-180
}

// pulseForAngle converts an angle in degrees to the controller's pulse units.
// The controller maps 0-180 degrees onto pulses 500-2500.
func pulseForAngle(angle float64) int {
	return int(angle/180.0*2000) + 500
}

// servoMoveFrame builds a CMD_SERVO_MOVE frame moving all given servos over
// the given duration. Layout:
//
//	0x55 0x55 <len> 0x03 <count> <timeLo> <timeHi> (<id> <posLo> <posHi>)...
//
// where len counts everything after the two header bytes.
func servoMoveFrame(moves []ServoMove, duration time.Duration) []byte {
	timeMS := int(duration / time.Millisecond)

	frame := make([]byte, 0, 7+3*len(moves))
	frame = append(frame,
		frameHeader, frameHeader,
		byte(3*len(moves)+5),
		cmdServoMove,
		byte(len(moves)),
		byte(timeMS&0xFF), byte(timeMS>>8&0xFF),
	)
	for _, m := range moves {
		pulse := pulseForAngle(m.Angle)
		frame = append(frame, byte(m.ID), byte(pulse&0xFF), byte(pulse>>8&0xFF))
	}
	return frame
}

// hidReport wraps a protocol frame in a fixed-size HID report. Byte 0 is the
// report id; the frame starts at byte 1.
func hidReport(frame []byte) []byte {
	report := make([]byte, reportSize)
	copy(report[1:], frame)
	return report
}
