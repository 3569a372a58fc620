package reveal

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// ShowItemsCaller delivers org.freedesktop.FileManager1.ShowItems
type ShowItemsCaller interface {
	ShowItems(uris []string, startupID string) error
}

// SessionBus calls ShowItems over a private session bus connection. The call
// is sent without expecting a reply, so it doesn't wait on the file manager.
type SessionBus struct{}

func (SessionBus) ShowItems(uris []string, startupID string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(fileManagerDest, dbus.ObjectPath(fileManagerPath))
	call := obj.Call(showItemsMethod, dbus.FlagNoReplyExpected, uris, startupID)
	if call.Err != nil {
		return fmt.Errorf("call %s: %w", showItemsMethod, call.Err)
	}
	return nil
}
