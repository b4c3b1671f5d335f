package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// Index отвечает приветствием, используется как проверка доступности
// GET /
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello There!!!"})
}

// ListQuestions возвращает страницу вопросов вместе со всеми категориями
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListQuestionsResponse(result.Questions, result.Total, result.Categories))
}

// CreateQuestion создает новый вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, "QuestionHandler", apperrors.InvalidInput("CreateQuestion", "invalid body: %v", err))
		return
	}

	id, err := h.questionService.CreateQuestion(c.Request.Context(), service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.IntPtr(),
		Difficulty: req.Difficulty.IntPtr(),
	})
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"added_question": id,
	})
}

// DeleteQuestion удаляет вопрос
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	id, err := h.questionService.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"deleted_question": id,
	})
}

// SearchQuestions ищет вопросы по подстроке без учета регистра
// POST /questions/search {searchTerm}
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, "QuestionHandler", apperrors.InvalidInput("SearchQuestions", "invalid body: %v", err))
		return
	}

	questions, err := h.questionService.SearchQuestions(c.Request.Context(), req.SearchTerm)
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{
		Success:   true,
		Questions: dto.NewListQuestionResponse(questions),
	})
}

// ExportQuestions выгружает все вопросы в CSV или Excel
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, err := h.questionService.ExportQuestions(c.Request.Context())
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV пишет вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(helper.ExportHeaders); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков CSV: %v", err)
		return
	}
	for i := range questions {
		if err := writer.Write(helper.QuestionToRecord(&questions[i])); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки CSV (вопрос %d): %v", questions[i].ID, err)
			return
		}
	}
}

// exportXLSX пишет вопросы в Excel через StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": http.StatusInternalServerError, "message": "Failed to create Excel file"})
		return
	}

	headers := make([]interface{}, len(helper.ExportHeaders))
	for i, name := range helper.ExportHeaders {
		headers[i] = name
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range questions {
		rowNum := i + 2 // 1 - заголовки
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := sw.SetRow(cell, helper.QuestionToRow(&questions[i])); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}
