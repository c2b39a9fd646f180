package notify

import (
	"errors"
	"fmt"
	"os/exec"

	"river-stream/pkg/core"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "ERROR"
	}
	return "INFO"
}

const title = "river-stream"

// NotifyService handles desktop notifications
type NotifyService struct {
	log           core.Logger
	notifyCommand string
	lookPath      func(string) (string, error)
	run           func(name string, args ...string) error
}

// NewNotifyService creates a new notification service. notifyCommand, when
// set, is run through sh with the type and message as arguments.
func NewNotifyService(notifyCommand string, log core.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		lookPath:      exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Show displays a notification of the specified type. When no notifier
// works the message only goes to the log.
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	if err := n.trySystemNotification(message, nType); err == nil {
		return nil
	}

	n.log.Warn("No notifier available", "type", nType.String(), "message", message)
	return fmt.Errorf("no notification tools available")
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "command", n.notifyCommand, "type", nType.String())
	// "$@" keeps the message out of shell parsing
	return n.run("sh", "-c", n.notifyCommand+` "$@"`, "notify", nType.String(), message)
}

var errNoTool = errors.New("no notification tool succeeded")
