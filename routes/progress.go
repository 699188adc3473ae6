package routes

import (
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected clients map with mutex for thread safety
var progressClients = make(map[*websocket.Conn]bool)
var progressEvents = make(chan progressEvent, 100) // Buffered channel to prevent blocking
var progressMutex = &sync.Mutex{}

type progressEvent struct {
	RunID  string `json:"run_id"`
	Entity string `json:"entity"`
	Name   string `json:"name"`
}

// progressRun tags every item persisted during one pipeline invocation with
// a shared run id, so a listener can tell interleaved runs apart.
type progressRun struct {
	id string
}

func newProgressRun() *progressRun {
	return &progressRun{id: uuid.New().String()}
}

func (r *progressRun) report(entity, name string) {
	select {
	case progressEvents <- progressEvent{RunID: r.id, Entity: entity, Name: name}:
	default:
		// A full buffer means no one is keeping up; drop rather than stall
		// the pipeline.
	}
}

func progressHandler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		progressMutex.Lock()
		progressClients[conn] = true
		progressMutex.Unlock()
		log.Println("Progress client connected:", conn.RemoteAddr())

		// Inbound messages are discarded; reading only reaps disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				progressMutex.Lock()
				delete(progressClients, conn)
				progressMutex.Unlock()
				log.Println("Progress client disconnected:", conn.RemoteAddr())
				break
			}
		}
	})
}

func broadcastProgress() {
	for event := range progressEvents {
		progressMutex.Lock()
		for client := range progressClients {
			if err := client.WriteJSON(event); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(progressClients, client)
			}
		}
		progressMutex.Unlock()
	}
}
