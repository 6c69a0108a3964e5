package subscribe

import (
	"context"
	"log"
	"strings"
	"syscall"
)

// ReadFunc resolves the current brightness after a change event.
type ReadFunc func() (float64, bool, error)

// UeventNotifier streams backlight change uevents from the kernel and
// resolves each one to the brightness value now in effect. It catches
// changes made by any process, hardware keys included.
type UeventNotifier struct {
	read ReadFunc
}

func NewUevent(read ReadFunc) *UeventNotifier {
	return &UeventNotifier{read: read}
}

func (u *UeventNotifier) Subscribe(ctx context.Context) (<-chan any, error) {
	fd, err := syscall.Socket(syscall.AF_NETLINK, syscall.SOCK_RAW, syscall.NETLINK_KOBJECT_UEVENT)
	if err != nil {
		return nil, err
	}

	addr := &syscall.SockaddrNetlink{
		Family: syscall.AF_NETLINK,
		Groups: 1, // listen to broadcast uevents
	}
	if err := syscall.Bind(fd, addr); err != nil {
		syscall.Close(fd)
		return nil, err
	}

	events := make(chan any, 1)

	go func() {
		defer syscall.Close(fd)
		defer close(events)

		buf := make([]byte, 4096)
		for {
			if ctx.Err() != nil {
				return
			}

			n, _, err := syscall.Recvfrom(fd, buf, 0)
			if err != nil {
				log.Printf("subscribe: netlink recv error: %v", err)
				continue
			}

			msg := string(buf[:n])
			if !strings.Contains(msg, "SUBSYSTEM=backlight") || !strings.Contains(msg, "ACTION=change") {
				continue
			}

			v, ok, err := u.read()
			if err != nil || !ok {
				continue
			}

			select {
			case events <- v:
			default:
			}
		}
	}()

	return events, nil
}
