package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"EncounterEngine/internal/dag"
	. "EncounterEngine/internal/game"
	"EncounterEngine/internal/save"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type liveConn struct {
	conn     *websocket.Conn
	format   wireFormat
	sendTick *time.Ticker
	writeMu  sync.Mutex
}

// send serializes writes; gorilla connections allow one writer at a time.
func (lc *liveConn) send(msg outboundMessage) error {
	lc.writeMu.Lock()
	defer lc.writeMu.Unlock()
	return writeFrame(lc.conn, lc.format, msg)
}

func (lc *liveConn) sendError(request string, err error) error {
	return lc.send(outboundMessage{Type: "error", Payload: errorDTO{Request: request, Message: err.Error()}})
}

func parseSeed(values url.Values) int64 {
	raw := values.Get("seed")
	if raw == "" {
		return time.Now().UnixNano()
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Now().UnixNano()
	}
	return val
}

// pilotRecord is the persistent side of one connection.
type pilotRecord struct {
	mu       sync.Mutex
	name     string
	progress save.Progress
}

func (p *pilotRecord) observe(events []Event, snap Snapshot) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress.Observe(events, snap)
}

func (p *pilotRecord) view(persistent bool) profileDTO {
	p.mu.Lock()
	defer p.mu.Unlock()
	return newProfileDTO(p.name, persistent, p.progress)
}

func (p *pilotRecord) persist(store *save.Store, s *Session) {
	p.mu.Lock()
	progress := p.progress
	p.mu.Unlock()
	if err := store.SaveProgress(p.name, progress); err != nil {
		log.Printf("save progress for %s: %v", p.name, err)
	}
	if err := store.SaveCampaign(p.name, campaignState(s)); err != nil {
		log.Printf("save campaign for %s: %v", p.name, err)
	}
}

// sessionView reads the engine and the unlock graph under one lock.
func sessionView(s *Session) (Snapshot, []string, []string) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	snap := s.Engine.Snapshot()
	var available, ships []string
	if s.Progression != nil {
		available = s.Progression.Available()
		ships = s.Progression.UnlockedShips()
	}
	return snap, available, ships
}

func campaignState(s *Session) *dag.State {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progression == nil {
		return nil
	}
	return s.Progression.State.Clone()
}

func hasEvent(events []Event, typ EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

// handleInbound applies one client frame to the session.
func handleInbound(s *Session, msg inboundMessage) error {
	switch msg.Type {
	case "start_mission":
		var payload startMissionDTO
		if err := decodePayload(msg, &payload); err != nil {
			return fmt.Errorf("invalid start_mission payload: %w", err)
		}
		return s.StartMission(strings.TrimSpace(payload.MissionID))
	case "complete_mission":
		return s.CompleteMission()
	case "abort":
		s.Abort()
		return nil
	}
	in, ok, err := decodeInput(msg)
	if err != nil {
		return fmt.Errorf("invalid %s payload: %w", msg.Type, err)
	}
	if !ok {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	s.Enqueue(in)
	return nil
}

func serveWS(app *App, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	difficulty := app.DefaultDifficulty()
	if raw := query.Get("difficulty"); raw != "" {
		difficulty = ParseDifficulty(raw)
	}
	format := parseWireFormat(strings.ToLower(query.Get("format")))
	manualAdvance := strings.ToLower(query.Get("advance")) == "manual"
	seed := parseSeed(query)

	pilot := &pilotRecord{name: save.ProfileKey(query.Get("profile"))}
	if progress, err := app.Store.LoadProgress(pilot.name); err != nil {
		log.Printf("load progress for %s: %v (starting fresh)", pilot.name, err)
	} else {
		pilot.progress = progress
	}
	campaign, err := app.Store.LoadCampaign(pilot.name)
	if err != nil {
		log.Printf("load campaign for %s: %v (starting fresh)", pilot.name, err)
		campaign = nil
	}
	progression, err := NewProgression(campaign)
	if err != nil {
		http.Error(w, "campaign unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	lc := &liveConn{
		conn:     conn,
		format:   format,
		sendTick: time.NewTicker(time.Duration(1000.0/UpdateRateHz) * time.Millisecond),
	}

	sess := app.Hub.Open(SessionConfig{
		Engine: EngineConfig{
			Difficulty: difficulty,
			Scoring:    app.ScoringParams(),
			Seed:       seed,
		},
		Progression: progression,
	})
	log.Printf("session %s opened (pilot %s, difficulty %s, format %s)", sess.ID, pilot.name, difficulty, format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			msg, err := readFrame(msgType, data)
			if err != nil {
				log.Printf("session %s: %v", sess.ID, err)
				continue
			}
			if err := handleInbound(sess, msg); err != nil {
				if sendErr := lc.sendError(msg.Type, err); sendErr != nil {
					return
				}
			}
		}
	}()

	senderDone := make(chan struct{})
	go func() {
		defer close(senderDone)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-lc.sendTick.C:
				events := sess.Drain()
				snap, _, _ := sessionView(sess)
				dirty := pilot.observe(events, snap)

				if !manualAdvance && hasEvent(events, EventMissionCompleted) {
					if dirty {
						pilot.persist(app.Store, sess)
					}
					if err := sess.CompleteMission(); err != nil {
						log.Printf("session %s: advance campaign: %v", sess.ID, err)
					}
					more := sess.Drain()
					snap, _, _ = sessionView(sess)
					dirty = pilot.observe(more, snap) || dirty
					events = append(events, more...)
				}
				if dirty {
					pilot.persist(app.Store, sess)
				}

				for _, ev := range events {
					if err := lc.send(outboundMessage{Type: string(ev.Type), Payload: ev.Payload}); err != nil {
						log.Printf("send event error: %v", err)
						return
					}
				}

				snap, available, ships := sessionView(sess)
				state := stateDTO{
					Snapshot:  snap,
					Session:   sess.ID,
					Available: available,
					Ships:     ships,
					Profile:   pilot.view(app.Store.Persistent()),
				}
				if err := lc.send(outboundMessage{Type: "state", Payload: state}); err != nil {
					log.Printf("send error: %v", err)
					return
				}
			}
		}
	}()

	<-ctx.Done()
	lc.sendTick.Stop()
	conn.Close()
	closeSession(app, sess, pilot, senderDone)
}

// closeSession waits for the sender to stop before the final save so its
// last persist cannot land after this one.
func closeSession(app *App, sess *Session, pilot *pilotRecord, senderDone <-chan struct{}) {
	<-senderDone
	app.Hub.Close(sess.ID)
	pilot.persist(app.Store, sess)
	log.Printf("session %s closed", sess.ID)
}
