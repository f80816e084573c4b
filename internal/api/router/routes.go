package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 KHÔNG gọi middleware khi đăng ký trực tiếp trong route:
//
// ❌ CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware.AuthMiddleware(secret), handler)
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    RegisterGroupWithMiddleware(router, "/prefix", []fiber.Handler{authMiddleware}, func(g fiber.Router) {
//        g.Get("/path", handler)
//    })
//    → Middleware được gọi đúng cách thông qua .Use() trên route group
//
// Nếu thấy route nào dùng cách trực tiếp router.Get/Post/Patch/Delete(path, middleware, handler)
// → PHẢI SỬA NGAY thành RegisterGroupWithMiddleware!
// ============================================================================

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterGroupWithMiddleware tạo group với prefix, gắn middleware qua .Use()
// (cách đúng theo Fiber v3, xem comment ở đầu file) rồi gọi register để đăng ký
// các route bên trong group. Mỗi domain router gọi hàm này một lần cho mỗi prefix.
func RegisterGroupWithMiddleware(router fiber.Router, prefix string, middlewares []fiber.Handler, register func(g fiber.Router)) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Route đăng ký với path tương đối (không có prefix vì đã có trong group)
	register(routeGroup)
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
