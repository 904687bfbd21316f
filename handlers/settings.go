package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tracker/service"
)

// ListSettings returns all settings as a key→value object.
func (h *CashHandlers) ListSettings(c *gin.Context) {
	settings, err := h.settings.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetSetting returns a single setting by key.
func (h *CashHandlers) GetSetting(c *gin.Context) {
	setting, err := h.settings.Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": setting.Key, "value": setting.Value})
}

// UpsertSetting writes a setting value, creating the key or replacing the
// existing value. The body must carry a value field; the empty string is a
// valid value but an explicit JSON null is rejected as missing, never stored
// as the text "null". Non-string values are coerced to text.
func (h *CashHandlers) UpsertSetting(c *gin.Context) {
	var req struct {
		Value interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Value is required"})
		return
	}

	key := c.Param("key")
	value := coerceSettingValue(req.Value)
	if err := h.settings.Upsert(key, value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":     key,
		"value":   value,
		"message": "Setting updated successfully",
	})
}

// coerceSettingValue renders any JSON scalar as the stored text value.
// Composite values fall back to their JSON encoding.
func coerceSettingValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, _ := json.Marshal(t)
		return string(data)
	}
}
