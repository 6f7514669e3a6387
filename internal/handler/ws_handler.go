package handler

import (
	"errors"
	"log"
	"net"
	"time"

	"presensi-backend/internal/apperr"
	"presensi-backend/internal/hub"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const writeTimeout = 10 * time.Second

type WSHandler struct {
	hub  *hub.Hub
	scan *usecase.ScanUsecase
}

func NewWSHandler(h *hub.Hub, scan *usecase.ScanUsecase) *WSHandler {
	return &WSHandler{hub: h, scan: scan}
}

// wsConn adalah sisi kirim satu koneksi dashboard. Kirim tidak pernah
// menunggu: kalau buffer penuh pesannya dilewati, biar koneksi lambat tidak
// menahan jalur scan.
type wsConn struct {
	id   string
	send chan hub.Pesan
}

func (c *wsConn) ID() string { return c.id }

func (c *wsConn) Kirim(p hub.Pesan) bool {
	select {
	case c.send <- p:
		return true
	default:
		return false
	}
}

// alamatKlien membuang porsi port dari alamat remote ("host:port" -> "host")
// supaya alamatnya bisa dicocokkan dengan allow-list dan tersimpan bersih
// di jejak audit.
func alamatKlien(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// wsFrame adalah frame masuk dari klien: identify / join / scan.
type wsFrame struct {
	Tipe       string `json:"tipe"`
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	Grup       string `json:"grup"`
	KartuID    string `json:"kartu_id"`
	EventID    *uint  `json:"event_id"`
	Gateway    string `json:"gateway"`
	NamaWifi   string `json:"nama_wifi"`
	Keterangan string `json:"keterangan"`
}

// Upgrade menolak request biasa ke endpoint websocket.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(wc *websocket.Conn) {
		conn := &wsConn{
			id:   uuid.NewString(),
			send: make(chan hub.Pesan, 32),
		}
		done := make(chan struct{})

		h.hub.Daftar(conn)
		defer func() {
			h.hub.Keluar(conn.id)
			close(done)
		}()

		go tulis(wc, conn, done)

		ip := alamatKlien(wc.RemoteAddr().String())
		for {
			var frame wsFrame
			if err := wc.ReadJSON(&frame); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("ws: koneksi %s putus: %v", conn.id, err)
				}
				return
			}
			h.proses(conn, frame, ip)
		}
	})
}

func (h *WSHandler) proses(conn *wsConn, frame wsFrame, ip string) {
	switch frame.Tipe {
	case "identify":
		h.hub.Identifikasi(conn.id, frame.UserID, frame.Role)
		conn.Kirim(hub.Pesan{Tipe: "identify_ok"})
	case "join":
		if h.hub.Gabung(conn.id, frame.Grup) {
			conn.Kirim(hub.Pesan{Tipe: "join_ok", Data: frame.Grup})
		} else {
			conn.Kirim(hub.Pesan{Tipe: "join_ditolak", Data: frame.Grup})
		}
	case "scan":
		// Scan manual lewat kanal realtime, pipeline-nya sama persis
		// dengan endpoint HTTP.
		hasil, err := h.scan.Proses(usecase.ScanInput{
			KartuID: frame.KartuID,
			EventID: frame.EventID,
			Sinyal: usecase.SinyalJaringan{
				Gateway:  frame.Gateway,
				IPKlien:  ip,
				NamaWifi: frame.NamaWifi,
			},
			Keterangan: frame.Keterangan,
		})
		if err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				conn.Kirim(hub.Pesan{Tipe: "scan_error", Data: ae})
			} else {
				conn.Kirim(hub.Pesan{Tipe: "scan_error", Data: apperr.ErrGagalSimpan})
			}
			return
		}
		conn.Kirim(hub.Pesan{Tipe: "scan_ok", Data: hasil})
	default:
		conn.Kirim(hub.Pesan{Tipe: "error", Data: "tipe frame tidak dikenal"})
	}
}

// tulis menguras buffer kirim ke socket dan menjaga koneksi dengan ping
// berkala. Keluar begitu koneksi ditutup atau socket error.
func tulis(wc *websocket.Conn, conn *wsConn, done <-chan struct{}) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	defer wc.Close()

	for {
		select {
		case pesan := <-conn.send:
			wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := wc.WriteJSON(pesan); err != nil {
				return
			}
		case <-ticker.C:
			wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := wc.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		case <-done:
			wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			wc.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
