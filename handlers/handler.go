package handlers

import (
	"errors"
	"net/http"
	"time"

	"multiservice-api/logger"
	"multiservice-api/middleware"
	"multiservice-api/repository"
	"multiservice-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves every resource endpoint from one repository.
type Handler struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

// New returns a Handler reading the clock from time.Now. A nil logger is
// replaced by a no-op one.
func New(repo *repository.Repository, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{repo: repo, log: log, now: time.Now}
}

// record is implemented by every resource a client can create.
type record[T any] interface {
	*T
	Stamp(now time.Time)
	RecordID() string
}

// create binds the body over rec (which already carries schema defaults),
// stamps it and inserts it verbatim. Any insert failure is a 400 carrying the
// raw storage error.
func create[T any, P record[T]](h *Handler, c *gin.Context, coll store.Collection[T], rec P, label, idKey string) {
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	rec.Stamp(h.now())

	log := logger.FromGin(c, h.log)
	if err := coll.Insert(c.Request.Context(), (*T)(rec)); err != nil {
		log.Warn("Insert failed", zap.String("resource", label), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := []zap.Field{zap.String("resource", label), zap.String("id", rec.RecordID())}
	if p, ok := middleware.GetPrincipal(c); ok {
		fields = append(fields, zap.String("principal", p.UID))
	}
	log.Info("Record created", fields...)

	c.JSON(http.StatusOK, gin.H{
		"message": label + " created successfully",
		idKey:     rec.RecordID(),
	})
}

// list returns the full match set for f under key.
func list[T any](h *Handler, c *gin.Context, coll store.Collection[T], f store.Filter, key string) {
	recs, err := coll.FindMany(c.Request.Context(), f)
	if err != nil {
		h.serverError(c, "List "+key+" failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: recs})
}

func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	logger.FromGin(c, h.log).Error(msg, zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
