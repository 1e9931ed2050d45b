package main

import "fmt"

type NotificationsCmd struct {
	Read bool `help:"Mark every notification as read"`
}

func (cmd *NotificationsCmd) Run(g *Globals) error {
	fmt.Fprint(g.Out, g.Render.RenderNotifications(g.Hub.List()))

	if !cmd.Read || g.Hub.UnreadCount() == 0 {
		return nil
	}

	g.Hub.MarkAllRead()
	if err := saveNotifications(g.KV, g.Hub); err != nil {
		return err
	}
	fmt.Fprintln(g.Out, "Marked all notifications as read.")
	return nil
}
