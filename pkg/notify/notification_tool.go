package notify

type notificationTool struct {
	name      string
	buildArgs func(message string, nType NotificationType) []string
}

var notificationTools = []notificationTool{
	{
		name: "dunstify",
		buildArgs: func(message string, nType NotificationType) []string {
			urgency, t := urgencyAndTitle(nType)
			return []string{"-u", urgency, "-t", "5000", t, message}
		},
	},
	{
		name: "notify-send",
		buildArgs: func(message string, nType NotificationType) []string {
			urgency, t := urgencyAndTitle(nType)
			return []string{"-u", urgency, t, message}
		},
	},
}

func urgencyAndTitle(nType NotificationType) (string, string) {
	if nType == Error {
		return "critical", title + " error"
	}
	return "normal", title
}

func (n *NotifyService) trySystemNotification(message string, nType NotificationType) error {
	for _, tool := range notificationTools {
		if _, err := n.lookPath(tool.name); err != nil {
			continue
		}
		if err := n.run(tool.name, tool.buildArgs(message, nType)...); err == nil {
			n.log.Debug("Notification sent successfully", "tool", tool.name, "type", nType.String())
			return nil
		}
	}
	return errNoTool
}
