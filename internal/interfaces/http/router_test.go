package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/auth"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/bootstrap"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/userdefaults"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/memory"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/pdf"
	apihttp "github.com/luxuryfaisal/QimmatAlaseel/internal/interfaces/http"
)

const (
	testSecret = "clave-de-prueba"
	testCookie = "session"
)

// testEnv aplicación completa sobre el almacenamiento en memoria, con el
// primer arranque ya sembrado (admin + secciones + pedidos de ejemplo).
type testEnv struct {
	app   *fiber.App
	store *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	defaults := userdefaults.New(store.Sections())
	_, err := bootstrap.New(store.Users(), store.Orders(), defaults, true).Run()
	require.NoError(t, err)

	jwtCfg := auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "qimmat-test"}
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(store.Users(), store.Settings(), jwtCfg),
		OrderUC:    usecase.NewOrderUseCase(store.Orders(), store),
		NoteUC:     usecase.NewNoteUseCase(store.Notes(), store.Orders()),
		TaskUC:     usecase.NewTaskUseCase(store.Tasks(), store),
		TaskNoteUC: usecase.NewTaskNoteUseCase(store.TaskNotes(), store.Tasks()),
		AttachUC:   usecase.NewAttachmentUseCase(store.Attachments(), store.Tasks()),
		SettingsUC: usecase.NewSettingsUseCase(store.Settings()),
		SectionUC:  usecase.NewSectionUseCase(store.Sections()),
		UserUC:     usecase.NewUserUseCase(store.Users(), defaults),
		ExportUC: usecase.NewExportUseCase(
			store.Orders(), store.Tasks(), store.Settings(),
			pdf.NewMarotoReportGenerator(),
		),
		Users:      store.Users(),
		JWTSecret:  testSecret,
		CookieName: testCookie,
		ExpMinutes: 60,
	})
	return &testEnv{app: app, store: store}
}

// do ejecuta una petición JSON opcionalmente autenticada con la cookie dada.
func (e *testEnv) do(t *testing.T, method, path, cookie string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", fmt.Sprintf("%s=%s", testCookie, cookie))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login inicia sesión y devuelve el valor de la cookie de sesión.
func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp := e.do(t, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s debe funcionar", username)
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			require.True(t, ck.HttpOnly, "la cookie de sesión debe ser httpOnly")
			return ck.Value
		}
	}
	t.Fatal("el login no dejó cookie de sesión")
	return ""
}

// createUser da de alta un usuario vía API con la sesión del admin.
func (e *testEnv) createUser(t *testing.T, adminCookie, username, password, role string) {
	t.Helper()
	resp := e.do(t, fiber.MethodPost, "/api/users", adminCookie, dto.CreateUserRequest{
		Username: username, Password: password, Role: role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decodeJSON[dto.ErrorResponse](t, resp).Message
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginHTTP_CredencialesInvalidas401(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHTTP_CuerpoIncompleto400(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "خطأ في البيانات المرسلة", errorMessage(t, resp))
}

func TestGuestHTTP_HabilitadoPorDefecto(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	// La fila de settings se crea con la primera escritura del admin.
	resp := env.do(t, fiber.MethodPut, "/api/settings", adminCookie, map[string]string{"backgroundColor": "#fafafa"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/auth/guest", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeJSON[dto.LoginResponse](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, "زائر", out.User.Username)
}

func TestGuestHTTP_Deshabilitado403(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPut, "/api/settings", adminCookie, map[string]string{"allowGuest": "false"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/auth/guest", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders + Notes
// ──────────────────────────────────────────────────────────────────────────────

func TestOrdersHTTP_CRUDCompleto(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	// El primer arranque deja 11 pedidos de ejemplo.
	resp := env.do(t, fiber.MethodGet, "/api/orders", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	orders := decodeJSON[[]dto.OrderResponse](t, resp)
	require.Len(t, orders, 11)

	resp = env.do(t, fiber.MethodPost, "/api/orders", cookie, dto.CreateOrderRequest{OrderNumber: "999000111"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[dto.OrderResponse](t, resp)
	assert.Equal(t, "قيد المراجعة", created.Status)

	resp = env.do(t, fiber.MethodPut, "/api/orders/"+created.ID, cookie, map[string]string{"status": "منجز"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeJSON[dto.OrderResponse](t, resp)
	assert.Equal(t, "منجز", updated.Status)

	resp = env.do(t, fiber.MethodDelete, "/api/orders/"+created.ID, cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeJSON[dto.SuccessResponse](t, resp).Success)
}

func TestOrdersHTTP_CrearSinNumero400(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPost, "/api/orders", cookie, dto.CreateOrderRequest{PartNumber: "87"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "خطأ في إنشاء الطلب", errorMessage(t, resp))
}

func TestOrdersHTTP_ActualizarInexistente404(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPut, "/api/orders/no-existe", cookie, map[string]string{"status": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "الطلب غير موجود", errorMessage(t, resp))
}

func TestNotesHTTP_VidaBajoSuPedido(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPost, "/api/orders", cookie, dto.CreateOrderRequest{OrderNumber: "123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decodeJSON[dto.OrderResponse](t, resp)

	resp = env.do(t, fiber.MethodPost, "/api/notes", cookie, dto.CreateNoteRequest{OrderID: order.ID, Content: "ملاحظة"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, fiber.MethodGet, "/api/orders/"+order.ID+"/notes", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notes := decodeJSON[[]dto.NoteResponse](t, resp)
	require.Len(t, notes, 1)
	assert.Equal(t, "ملاحظة", notes[0].Content)

	// Borrar el pedido arrastra sus notas.
	resp = env.do(t, fiber.MethodDelete, "/api/orders/"+order.ID, cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, fiber.MethodGet, "/api/orders/"+order.ID+"/notes", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeJSON[[]dto.NoteResponse](t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento entre propietarios a través de la API
// ──────────────────────────────────────────────────────────────────────────────

func TestOrdersHTTP_OtroUsuarioNoVeNiTocaLoAjeno(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	env.createUser(t, adminCookie, "karim", "clave123", "editor")
	karimCookie := env.login(t, "karim", "clave123")

	resp := env.do(t, fiber.MethodPost, "/api/orders", adminCookie, dto.CreateOrderRequest{OrderNumber: "555"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decodeJSON[dto.OrderResponse](t, resp)

	// El listado de karim no incluye nada del admin.
	resp = env.do(t, fiber.MethodGet, "/api/orders", karimCookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeJSON[[]dto.OrderResponse](t, resp))

	// Tocar el pedido ajeno se ve igual que tocar uno inexistente.
	resp = env.do(t, fiber.MethodPut, "/api/orders/"+order.ID, karimCookie, map[string]string{"status": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = env.do(t, fiber.MethodDelete, "/api/orders/"+order.ID, karimCookie, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// El pedido del admin sigue intacto.
	resp = env.do(t, fiber.MethodGet, "/api/orders", adminCookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeJSON[[]dto.OrderResponse](t, resp), 12)
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRolesHTTP_ViewerSoloLectura(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	env.createUser(t, adminCookie, "lector", "clave123", "viewer")
	viewerCookie := env.login(t, "lector", "clave123")

	resp := env.do(t, fiber.MethodGet, "/api/orders", viewerCookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/orders", viewerCookie, dto.CreateOrderRequest{OrderNumber: "1"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ليس لديك صلاحية للتعديل - للمشاهدة فقط", errorMessage(t, resp))
}

func TestRolesHTTP_EditorEscribePeroNoGestionaSecciones(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	env.createUser(t, adminCookie, "editor1", "clave123", "editor")
	editorCookie := env.login(t, "editor1", "clave123")

	resp := env.do(t, fiber.MethodPost, "/api/orders", editorCookie, dto.CreateOrderRequest{OrderNumber: "7"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/sections", editorCookie, dto.CreateSectionRequest{Name: "قسم", BaseType: "orders"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "يجب أن تكون مديراً أو موظفاً للوصول لهذه الميزة", errorMessage(t, resp))
}

func TestRolesHTTP_UsuariosSoloAdmin(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	env.createUser(t, adminCookie, "empleado", "clave123", "employee")
	employeeCookie := env.login(t, "empleado", "clave123")

	resp := env.do(t, fiber.MethodGet, "/api/users", employeeCookie, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "يجب أن تكون مديراً للوصول لهذه الميزة", errorMessage(t, resp))

	resp = env.do(t, fiber.MethodGet, "/api/users", adminCookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRolesHTTP_InvitadoSoloLectura(t *testing.T) {
	env := newTestEnv(t)
	adminCookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)
	resp := env.do(t, fiber.MethodPut, "/api/settings", adminCookie, map[string]string{"allowGuest": "true"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/auth/guest", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var guestCookie string
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			guestCookie = ck.Value
		}
	}
	require.NotEmpty(t, guestCookie)

	resp = env.do(t, fiber.MethodGet, "/api/orders", guestCookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/orders", guestCookie, dto.CreateOrderRequest{OrderNumber: "1"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjuntos: validación de tipo y tamaño en la capa HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAttachmentsHTTP_TipoNoSoportado400(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPost, "/api/tasks", cookie, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decodeJSON[dto.TaskResponse](t, resp)

	resp = env.do(t, fiber.MethodPost, "/api/attachments", cookie, dto.CreateAttachmentRequest{
		TaskID: task.ID, Filename: "doc.pdf", MimeType: "application/pdf",
		DataBase64: "data:application/pdf;base64,aGVsbG8=",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "نوع الملف غير مدعوم - الصور فقط", errorMessage(t, resp))
}

func TestAttachmentsHTTP_ImagenValidaRecalculaTamano(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPost, "/api/tasks", cookie, dto.CreateTaskRequest{TaskName: "مهمة"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decodeJSON[dto.TaskResponse](t, resp)

	// "aGVsbG8=" son 8 caracteres base64 → 6 bytes decodificados.
	resp = env.do(t, fiber.MethodPost, "/api/attachments", cookie, dto.CreateAttachmentRequest{
		TaskID: task.ID, Filename: "foto.png", MimeType: "image/png",
		DataBase64: "data:image/png;base64,aGVsbG8=", Size: "999999",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	att := decodeJSON[dto.AttachmentResponse](t, resp)
	assert.Equal(t, "6", att.Size, "el tamaño declarado por el cliente se ignora")
}

// ──────────────────────────────────────────────────────────────────────────────
// PIN
// ──────────────────────────────────────────────────────────────────────────────

func TestPinHTTP_VerificacionYRechazo(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodPost, "/api/pin/set", cookie, dto.PinRequest{Pin: "1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, fiber.MethodPost, "/api/pin/verify", cookie, dto.PinRequest{Pin: "1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeJSON[dto.PinVerifyResponse](t, resp)
	assert.True(t, out.Success)
	assert.NotZero(t, out.Timestamp)

	resp = env.do(t, fiber.MethodPost, "/api/pin/verify", cookie, dto.PinRequest{Pin: "0000"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "رقم الحماية غير صحيح", errorMessage(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Export PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestExportHTTP_PedidosDevuelvePDF(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, bootstrap.AdminUsername, bootstrap.AdminPassword)

	resp := env.do(t, fiber.MethodGet, "/api/orders/export/pdf", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF real")
}
