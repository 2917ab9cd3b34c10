package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/liyas/soalgen/internal/config"
	"github.com/liyas/soalgen/internal/exam"
	"github.com/liyas/soalgen/internal/export"
	"github.com/liyas/soalgen/internal/llm"
	"github.com/liyas/soalgen/internal/service"
)

type fakeProvider struct {
	pkg        exam.Package
	regen      exam.QuestionItem
	explainTxt string
	err        error
}

func (f *fakeProvider) GeneratePackage(_ context.Context, _ llm.GenerateRequest) (exam.Package, error) {
	return f.pkg, f.err
}

func (f *fakeProvider) RegenerateQuestion(_ context.Context, _ exam.QuestionItem, _ exam.Meta) (exam.QuestionItem, error) {
	return f.regen, f.err
}

func (f *fakeProvider) ExplainAnswer(_ context.Context, _ exam.QuestionItem, _ exam.AnswerKeyItem, _ exam.Meta) (string, error) {
	return f.explainTxt, f.err
}

func twoItemPackage() exam.Package {
	pkg := exam.Package{Meta: exam.Meta{Subject: "Fisika", Grade: "X", Topic: "Gerak"}}
	for n := 1; n <= 2; n++ {
		pkg.Blueprint = append(pkg.Blueprint, exam.BlueprintItem{Number: n, CompetencyStatement: fmt.Sprintf("KD %d", n)})
		pkg.Questions = append(pkg.Questions, exam.QuestionItem{
			Number: n, Difficulty: exam.DifficultyMedium, QuestionType: exam.TypeEssay,
			PromptText: fmt.Sprintf("Pertanyaan %d", n),
		})
		pkg.AnswerKey = append(pkg.AnswerKey, exam.AnswerKeyItem{Number: n, AnswerText: fmt.Sprintf("Jawaban %d", n)})
		pkg.Analysis = append(pkg.Analysis, exam.AnalysisItem{Number: n, Difficulty: "Sedang"})
	}
	pkg.Meta.QuestionCount = 2
	return pkg
}

func newTestApp(t *testing.T, provider llm.Provider) *App {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	a := New(context.Background(),
		config.Config{UI: config.UIConfig{Language: "Bahasa Indonesia"}},
		&service.GeneratorService{Provider: provider},
		&service.Coordinator{Provider: provider},
		&export.Exporter{Dir: t.TempDir()},
	)
	return a
}

func withPackage(t *testing.T, provider llm.Provider) *App {
	t.Helper()
	a := newTestApp(t, provider)
	a.Update(generatedMsg{pkg: twoItemPackage()})
	return a
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// runCmd executes a command tree, flattening batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, runCmd(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func msgOfType[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %d messages", zero, len(msgs))
	panic("unreachable")
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormSubmitGeneratesPackage(t *testing.T) {
	provider := &fakeProvider{pkg: twoItemPackage()}
	a := newTestApp(t, provider)

	require.Equal(t, viewForm, a.state)
	a.Update(key("down")) // grade -> subject
	typeText(a, "Fisika")
	a.Update(key("down"))
	typeText(a, "Gerak Lurus")
	for a.form.cursor < a.form.submitRow() {
		a.Update(key("down"))
	}
	_, cmd := a.Update(key("enter"))
	require.NotNil(t, cmd)
	require.True(t, a.generating)

	gm := msgOfType[generatedMsg](t, runCmd(cmd))
	a.Update(gm)

	require.Equal(t, viewPackage, a.state)
	require.True(t, a.hasPackage)
	require.False(t, a.generating)
	require.Len(t, a.pkg.Questions, 2)
}

func TestFormSubjectFuzzyCorrection(t *testing.T) {
	a := newTestApp(t, &fakeProvider{pkg: twoItemPackage()})

	a.Update(key("down"))
	typeText(a, "Biolgi")
	a.Update(key("down"))
	typeText(a, "Sel")
	for a.form.cursor < a.form.submitRow() {
		a.Update(key("down"))
	}
	_, cmd := a.Update(key("enter"))
	require.NotNil(t, cmd)
	require.Equal(t, "Biologi", a.form.values["subject"])
}

func TestFormRejectsBadCount(t *testing.T) {
	a := newTestApp(t, &fakeProvider{pkg: twoItemPackage()})
	a.form.values["subject"] = "Fisika"
	a.form.values["topic"] = "Gerak"
	a.form.values["count"] = "nol"
	a.form.cursor = a.form.submitRow()

	_, cmd := a.Update(key("enter"))
	require.Nil(t, cmd)
	require.False(t, a.generating)
	require.Contains(t, a.status, "Jumlah soal")
}

func TestGenerateFailureShowsPageError(t *testing.T) {
	a := newTestApp(t, &fakeProvider{err: errors.New("backend down")})
	a.generating = true

	a.Update(generateErrMsg{err: errors.New("backend down")})
	require.False(t, a.generating)
	require.Equal(t, service.MsgGenerateErr, a.pageErr)
	require.Equal(t, viewForm, a.state)
}

func TestRegenerateFlowWithFeedback(t *testing.T) {
	provider := &fakeProvider{regen: exam.QuestionItem{
		Number: 1, Difficulty: exam.DifficultyMedium, QuestionType: exam.TypeEssay, PromptText: "Pertanyaan baru",
	}}
	a := withPackage(t, provider)

	_, cmd := a.Update(key("r"))
	require.NotNil(t, cmd)
	busy, ok := a.coord.BusyItem()
	require.True(t, ok)
	require.Equal(t, 1, busy)

	// second operation while busy is refused
	_, second := a.Update(key("r"))
	require.Nil(t, second)
	require.Contains(t, a.status, "Tunggu")

	rm := msgOfType[regeneratedMsg](t, runCmd(cmd))
	_, tick := a.Update(rm)
	require.NotNil(t, tick)

	_, ok = a.coord.BusyItem()
	require.False(t, ok)
	require.Equal(t, "Pertanyaan baru", a.pkg.Questions[0].PromptText)
	// answer key untouched
	require.Equal(t, "Jawaban 1", a.pkg.AnswerKey[0].AnswerText)

	fb, ok := a.coord.Feedback()
	require.True(t, ok)
	require.Equal(t, service.MsgRegenerated, fb.Message)

	a.Update(tick())
	_, ok = a.coord.Feedback()
	require.False(t, ok)
}

func TestDeleteWhileRegenerateInFlightSticks(t *testing.T) {
	provider := &fakeProvider{regen: exam.QuestionItem{
		Number: 1, Difficulty: exam.DifficultyMedium, QuestionType: exam.TypeEssay, PromptText: "Pertanyaan baru",
	}}
	a := withPackage(t, provider)

	_, cmd := a.Update(key("r"))
	require.NotNil(t, cmd)

	// item 2 is deleted while the call is in flight
	a.Update(key("down"))
	a.Update(key("d"))
	a.Update(key("y"))
	require.Len(t, a.pkg.Questions, 1)
	require.Equal(t, 1, a.pkg.Meta.QuestionCount)

	rm := msgOfType[regeneratedMsg](t, runCmd(cmd))
	a.Update(rm)

	// the completion lands on the current package: the delete is not undone
	require.Len(t, a.pkg.Questions, 1)
	require.Equal(t, 1, a.pkg.Meta.QuestionCount)
	require.Equal(t, "Pertanyaan baru", a.pkg.Questions[0].PromptText)
}

func TestRegenerateOfDeletedQuestionIsDropped(t *testing.T) {
	provider := &fakeProvider{regen: exam.QuestionItem{
		Number: 2, Difficulty: exam.DifficultyMedium, QuestionType: exam.TypeEssay, PromptText: "Pertanyaan baru",
	}}
	a := withPackage(t, provider)

	a.Update(key("down"))
	_, cmd := a.Update(key("r"))
	require.NotNil(t, cmd)

	// the busy question itself is deleted; the survivor takes number 1
	a.Update(key("d"))
	a.Update(key("y"))

	rm := msgOfType[regeneratedMsg](t, runCmd(cmd))
	a.Update(rm)

	require.Equal(t, "Pertanyaan 1", a.pkg.Questions[0].PromptText)
	_, busy := a.coord.BusyItem()
	require.False(t, busy)
	_, ok := a.coord.Feedback()
	require.False(t, ok)
}

func TestStaleRegenerateAfterNewPackageIsDropped(t *testing.T) {
	provider := &fakeProvider{regen: exam.QuestionItem{
		Number: 1, Difficulty: exam.DifficultyMedium, QuestionType: exam.TypeEssay, PromptText: "Pertanyaan basi",
	}}
	a := withPackage(t, provider)

	_, cmd := a.Update(key("r"))
	require.NotNil(t, cmd)

	// a whole new package replaces the one the call was started against
	a.Update(generatedMsg{pkg: twoItemPackage()})

	rm := msgOfType[regeneratedMsg](t, runCmd(cmd))
	a.Update(rm)

	require.Equal(t, "Pertanyaan 1", a.pkg.Questions[0].PromptText)
	_, busy := a.coord.BusyItem()
	require.False(t, busy)
}

func TestExplainOpensModal(t *testing.T) {
	a := withPackage(t, &fakeProvider{explainTxt: "Karena gerak lurus beraturan."})

	_, cmd := a.Update(key("x"))
	require.NotNil(t, cmd)
	a.Update(msgOfType[explainedMsg](t, runCmd(cmd)))

	require.Equal(t, modalExplain, a.modal)
	require.Contains(t, a.explanation, "gerak lurus")
	_, busy := a.coord.BusyItem()
	require.False(t, busy)

	a.Update(key("esc"))
	require.Equal(t, modalNone, a.modal)
}

func TestDeleteConfirmCascades(t *testing.T) {
	a := withPackage(t, &fakeProvider{})

	a.Update(key("d"))
	require.Equal(t, modalConfirmDelete, a.modal)
	require.Equal(t, 1, a.deleteTarget)

	a.Update(key("y"))
	require.Equal(t, modalNone, a.modal)
	require.Len(t, a.pkg.Questions, 1)
	require.Len(t, a.pkg.AnswerKey, 1)
	// survivor renumbered to 1
	require.Equal(t, 1, a.pkg.Questions[0].Number)
	require.Equal(t, "Pertanyaan 2", a.pkg.Questions[0].PromptText)
}

func TestEditorCommitUpdatesQuestion(t *testing.T) {
	a := withPackage(t, &fakeProvider{})

	a.Update(key("e"))
	require.Equal(t, modalEditor, a.modal)

	// first field is the prompt text
	a.Update(key("enter"))
	require.True(t, a.editingField)
	a.inputBuffer = ""
	typeText(a, "Pertanyaan sunting")
	a.Update(key("enter"))
	require.False(t, a.editingField)

	for a.editorCursor < len(a.editorFields) {
		a.Update(key("down"))
	}
	a.Update(key("enter"))
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, "Pertanyaan sunting", a.pkg.Questions[0].PromptText)
}

func TestEditorTypeSwitchSeedsOptions(t *testing.T) {
	a := withPackage(t, &fakeProvider{})

	a.Update(key("e"))
	a.Update(key("down")) // tipe soal
	a.Update(key("right"))
	// Uraian -> Pilihan Ganda
	require.Equal(t, string(exam.TypeMultipleChoice), a.editor.Field("tipeSoal"))
	require.Equal(t, "A. ", a.editor.Field("pilihan.0"))
	require.Len(t, a.editorFields, 9)
}

func TestNewItemOnBlueprintTab(t *testing.T) {
	a := withPackage(t, &fakeProvider{})

	a.Update(key("tab")) // kunci
	a.Update(key("tab")) // kisi
	require.Equal(t, exam.KindBlueprint, a.tab)

	a.Update(key("n"))
	require.Equal(t, modalEditor, a.modal)
	require.True(t, a.editor.IsNew)
	require.Equal(t, 3, a.editor.Number())

	for a.editorCursor < len(a.editorFields) {
		a.Update(key("down"))
	}
	a.Update(key("enter"))
	require.Len(t, a.pkg.Blueprint, 3)
	// siblings padded up to the new number
	require.Len(t, a.pkg.Questions, 3)
	require.Len(t, a.pkg.AnswerKey, 3)
	require.Len(t, a.pkg.Analysis, 3)
}

func TestExportModalWritesDocument(t *testing.T) {
	a := withPackage(t, &fakeProvider{})

	a.Update(key("s"))
	require.Equal(t, modalExport, a.modal)
	_, cmd := a.Update(key("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	exported, ok := msg.(exportedMsg)
	require.True(t, ok, "expected exportedMsg, got %T", msg)
	require.Contains(t, exported.path, "Paket Soal Fisika Kelas X.txt")
}

func TestRegenerateGuardOnOtherTabs(t *testing.T) {
	a := withPackage(t, &fakeProvider{})

	a.Update(key("tab")) // kunci jawaban
	_, cmd := a.Update(key("r"))
	require.Nil(t, cmd)
	_, busy := a.coord.BusyItem()
	require.False(t, busy)
}
