package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"college-portal/internal/common/errors"
	apphttp "college-portal/internal/common/http"
	"college-portal/internal/common/validation"
	videonotes "college-portal/internal/features/tutorials/video-notes"
)

func errNotConfigured(feature string) error {
	return fmt.Errorf("%s is not configured", feature)
}

// ==========================
// Catalog
// ==========================

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	if s.deps.Catalog == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("catalog")))
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, s.deps.Catalog.Videos)
}

func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	if s.deps.Catalog == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("catalog")))
		return
	}
	id := mux.Vars(r)["videoId"]
	v, ok := s.deps.Catalog.Video(id)
	if !ok {
		s.fail(w, r, errors.NewVideoNotFoundError(id))
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, v)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.deps.Catalog == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("catalog")))
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, s.deps.Catalog.Documents)
}

// ==========================
// Notes
// ==========================

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, ok := s.notes(w, r)
	if !ok {
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, notes.List(r.Context(), mux.Vars(r)["videoId"]))
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	notes, ok := s.notes(w, r)
	if !ok {
		return
	}
	var req noteRequest
	if err := s.decode(r, validation.SchemaNote, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	note, err := notes.Add(r.Context(), mux.Vars(r)["videoId"], req.Timestamp, req.Content)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusCreated, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	notes, ok := s.notes(w, r)
	if !ok {
		return
	}
	var req contentRequest
	if err := s.decode(r, validation.SchemaNoteUpdate, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	vars := mux.Vars(r)
	note, err := notes.Update(r.Context(), vars["videoId"], vars["noteId"], req.Content)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	notes, ok := s.notes(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	if err := notes.Delete(r.Context(), vars["videoId"], vars["noteId"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleProgress reports watch progress and, for catalog videos, the
// transcript segment playing at currentTime.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := s.decode(r, validation.SchemaProgress, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	videoID := mux.Vars(r)["videoId"]
	p, err := videonotes.Progress(videoID, req.CurrentTime, req.Duration)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := progressResponse{Progress: p}
	if s.deps.Catalog != nil {
		if v, ok := s.deps.Catalog.Video(videoID); ok {
			if seg, ok := videonotes.ActiveSegment(v.Transcript, req.CurrentTime); ok {
				resp.ActiveSegment = &seg
			}
		}
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) notes(w http.ResponseWriter, r *http.Request) (*videonotes.NoteStore, bool) {
	if s.deps.Notes == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("notes")))
		return nil, false
	}
	return s.deps.Notes, true
}

// ==========================
// Assistant
// ==========================

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	if s.deps.Chat == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("chat")))
		return
	}
	conv := s.deps.Chat.Conversation(mux.Vars(r)["sessionId"])
	apphttp.WriteJSON(w, http.StatusOK, chatHistoryResponse{Messages: conv.Messages(), Typing: conv.Typing()})
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	if s.deps.Chat == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("chat")))
		return
	}
	var req contentRequest
	if err := s.decode(r, validation.SchemaChatMessage, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	conv := s.deps.Chat.Conversation(mux.Vars(r)["sessionId"])
	reply, err := conv.Send(r.Context(), req.Content)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusCreated, chatResponse{Reply: reply, Messages: conv.Messages()})
}

func (s *Server) handleChatClear(w http.ResponseWriter, r *http.Request) {
	if s.deps.Chat == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("chat")))
		return
	}
	s.deps.Chat.Clear(mux.Vars(r)["sessionId"])
	w.WriteHeader(http.StatusNoContent)
}
