package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const scheduleChannelPrefix = "schedule:"

func scheduleChannel(id int) string {
	return scheduleChannelPrefix + strconv.Itoa(id)
}

// SeatFeed pushes refreshed seat rows to open schedule pages. With redis
// the rows travel over pub/sub so every console instance sees them.
type SeatFeed struct {
	rdb *redis.Client
	log zerolog.Logger

	mu      sync.Mutex
	clients map[int]map[*websocket.Conn]bool
}

func NewSeatFeed(rdb *redis.Client, log zerolog.Logger) *SeatFeed {
	return &SeatFeed{rdb: rdb, log: log, clients: map[int]map[*websocket.Conn]bool{}}
}

// Publish announces the seat rows of a schedule.
func (f *SeatFeed) Publish(ctx context.Context, scheduleId int, rows []model.SeatRow) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	if f.rdb == nil {
		f.broadcast(scheduleId, payload)
		return nil
	}
	if err := f.rdb.Publish(ctx, scheduleChannel(scheduleId), payload).Err(); err != nil {
		return fmt.Errorf("publish seats: %w", err)
	}
	return nil
}

// Run relays pub/sub messages to local connections until ctx ends.
func (f *SeatFeed) Run(ctx context.Context) {
	if f.rdb == nil {
		return
	}
	pubsub := f.rdb.PSubscribe(ctx, scheduleChannelPrefix+"*")
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			id, err := strconv.Atoi(strings.TrimPrefix(msg.Channel, scheduleChannelPrefix))
			if err != nil {
				continue
			}
			f.broadcast(id, []byte(msg.Payload))
		}
	}
}

func (f *SeatFeed) add(id int, conn *websocket.Conn) {
	f.mu.Lock()
	if f.clients[id] == nil {
		f.clients[id] = map[*websocket.Conn]bool{}
	}
	f.clients[id][conn] = true
	f.mu.Unlock()
}

func (f *SeatFeed) remove(id int, conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.clients[id], conn)
	if len(f.clients[id]) == 0 {
		delete(f.clients, id)
	}
	f.mu.Unlock()
}

func (f *SeatFeed) broadcast(id int, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients[id] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			f.log.Debug().Err(err).Int("schedule_id", id).Msg("dropping seat feed client")
			conn.Close()
			delete(f.clients[id], conn)
		}
	}
}

// Connections counts the pages following a schedule.
func (f *SeatFeed) Connections(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients[id])
}

// UpgradeSocket lets only websocket handshakes through to ScheduleSocket.
func UpgradeSocket(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ScheduleSocket sends the current seat rows, then every update for the
// schedule until the page closes.
func (h *Handler) ScheduleSocket(c *websocket.Conn) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		c.Close()
		return
	}
	defer c.Close()

	api := h.API
	if s, ok := c.Locals(helper.SessionLocal).(*helper.Session); ok && s.Authenticated() {
		api = api.WithToken(s.User.Token)
	}
	ctx, cancel := context.WithTimeout(context.Background(), socketFetchTimeout)
	schedule, err := api.GetSchedule(ctx, id)
	cancel()
	if err != nil {
		h.Log.Warn().Err(err).Int("schedule_id", id).Msg("seat feed: initial load failed")
		return
	}
	if err := c.WriteJSON(helper.BuildRows(schedule.ScheduleSeats)); err != nil || h.Feed == nil {
		return
	}

	h.Feed.add(id, c)
	defer h.Feed.remove(id, c)
	h.Log.Debug().Int("schedule_id", id).Int("connections", h.Feed.Connections(id)).Msg("seat feed connected")

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
