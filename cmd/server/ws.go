package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dkim-bro/omok2025/engine"
)

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type wsMovePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type wsEngineMovePayload struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Finished bool `json:"finished"`
	Winner   int  `json:"winner"`
}

type wsErrorPayload struct {
	Error string `json:"error"`
}

// handlePlaySocket runs one interactive game over a websocket. The client
// sends "move" and "reset" messages; the server answers with the engine's
// replies and the session state after every exchange.
func (m *sessionManager) handlePlaySocket(w http.ResponseWriter, r *http.Request) {
	human := engine.PlayerBlack
	if r.URL.Query().Get("player") == "2" {
		human = engine.PlayerWhite
	}

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := m.create(human)
	if err != nil {
		log.Printf("[ws] session setup failed: %v", err)
		return
	}
	defer m.remove(session.id)
	log.Printf("[ws] session %s started, human plays %v", session.id, human)

	sendState(conn, session)

	// Engine opens when the human takes white.
	if human == engine.PlayerWhite {
		if !sendEngineMove(conn, session) {
			return
		}
	}

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] session %s read error: %v", session.id, err)
			}
			return
		}
		switch msg.Type {
		case "move":
			var payload wsMovePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				sendError(conn, "invalid move payload: "+err.Error())
				continue
			}
			finished, err := session.applyHuman(engine.Move{X: payload.X, Y: payload.Y})
			if err != nil {
				sendError(conn, err.Error())
				continue
			}
			if !finished {
				if !sendEngineMove(conn, session) {
					return
				}
			}
			sendState(conn, session)
		case "reset":
			session.reset()
			sendState(conn, session)
			if human == engine.PlayerWhite {
				if !sendEngineMove(conn, session) {
					return
				}
				sendState(conn, session)
			}
		default:
			sendError(conn, "unknown message type: "+msg.Type)
		}
	}
}

func sendEngineMove(conn *websocket.Conn, session *playSession) bool {
	m, finished, err := session.playEngine()
	if err != nil {
		log.Printf("[ws] session %s engine error: %v", session.id, err)
		sendError(conn, err.Error())
		return false
	}
	state := session.state()
	payload := wsEngineMovePayload{X: m.X, Y: m.Y, Finished: finished, Winner: state.Winner}
	return send(conn, wsMessage{Type: "engine_move", Payload: mustMarshal(payload)})
}

func sendState(conn *websocket.Conn, session *playSession) bool {
	return send(conn, wsMessage{Type: "state", Payload: mustMarshal(session.state())})
}

func sendError(conn *websocket.Conn, message string) bool {
	return send(conn, wsMessage{Type: "error", Payload: mustMarshal(wsErrorPayload{Error: message})})
}

func send(conn *websocket.Conn, msg wsMessage) bool {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write failed: %v", err)
		return false
	}
	return true
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
