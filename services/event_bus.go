package services

import (
	"log"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/models"

	"gorm.io/gorm"
)

type progressDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _progress progressDeps

func InitProgressDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_progress = progressDeps{db: db, rt: rt, ps: ps}
}

func Hub() *RealtimeHub { return _progress.rt }

func Push() *PushService { return _progress.ps }

// EmitProgress records a progress event and fans it out to the websocket
// hub and, for streak milestones, to push. Safe to call anywhere; side
// channels are best-effort.
func EmitProgress(userID uint, typ, message string, payload any) {
	if _progress.db == nil {
		return // not initialized
	}
	ev := &models.ProgressEvent{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if err := _progress.db.Create(ev).Error; err != nil {
		log.Printf("progress event persist failed: %v", err)
	}

	if _progress.rt != nil {
		_progress.rt.BroadcastProgress(userID, map[string]any{
			"kind":    typ,
			"message": message,
			"payload": payload,
		})
	}
	if _progress.ps != nil && typ == "streak.milestone" {
		_progress.ps.PushToUser(userID, "Streak milestone", message, map[string]string{
			"type": typ,
		})
	}
}

func ListProgressEvents(userID uint, limit int) ([]models.ProgressEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	var events []models.ProgressEvent
	err := _progress.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
