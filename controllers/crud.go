package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/isLah-15/CarDB-Render/services"
	"github.com/isLah-15/CarDB-Render/utils"
)

// Resource serves the uniform CRUD contract for one entity: parse and
// validate the id, call the store, map tagged errors to status codes.
// The same handler set backs every entity; only the store's preloads and
// the optional validate hook differ per instantiation.
type Resource[T any, P interface {
	*T
	services.Record
}] struct {
	Name   string // singular label used in messages, e.g. "Car"
	Plural string // plural label, lower case, e.g. "cars"
	Store  *services.Store[T, P]

	// Validate runs on create and update after binding, before the store
	// call. Returning an error yields a 400 with the error message.
	Validate func(P) error
}

// RegisterRoutes mounts the five CRUD endpoints on the given group.
func (r *Resource[T, P]) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("", r.Create)
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.PUT("/:id", r.Update)
	g.DELETE("/:id", r.Delete)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func (r *Resource[T, P]) Create(c *gin.Context) {
	rec := P(new(T))
	if err := c.ShouldBindJSON(rec); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if r.Validate != nil {
		if err := r.Validate(rec); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	// Ids are assigned by the database, never taken from the payload.
	rec.SetID(0)

	if err := r.Store.Create(rec); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": r.Name + " created successfully",
		"data":    rec,
	})
}

func (r *Resource[T, P]) List(c *gin.Context) {
	recs, err := r.Store.List()
	if errors.Is(err, services.ErrNoRecords) {
		utils.RespondWithError(c, http.StatusNotFound, "No "+r.Plural+" found")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": capitalize(r.Plural) + " retrieved successfully",
		"data":    recs,
	})
}

func (r *Resource[T, P]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := r.Store.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, r.Name+" not found")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}

func (r *Resource[T, P]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Confirm existence before touching anything.
	if _, err := r.Store.Get(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, r.Name+" not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	rec := P(new(T))
	if err := c.ShouldBindJSON(rec); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// An id embedded in the body must agree with the URL.
	if bodyID := rec.GetID(); bodyID != 0 && bodyID != id {
		utils.RespondWithError(c, http.StatusBadRequest, r.Name+" ID in request body does not match URL")
		return
	}

	if r.Validate != nil {
		if err := r.Validate(rec); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := r.Store.Update(id, rec); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": r.Name + " updated successfully",
		"data":    rec,
	})
}

func (r *Resource[T, P]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := r.Store.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, r.Name+" not found")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
