package routes

import (
	"net/http"
	"strings"

	"github.com/bargaoui/rideaux/app/controllers"
	appgraphql "github.com/bargaoui/rideaux/app/graphql"
	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/pkg/ctx"
	"github.com/bargaoui/rideaux/pkg/metrics"
	"github.com/bargaoui/rideaux/pkg/middleware"
	"github.com/bargaoui/rideaux/pkg/router"
	"github.com/bargaoui/rideaux/pkg/ws"
	"github.com/graphql-go/graphql"
)

// Deps carries everything the route table needs.
type Deps struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Products      *controllers.ProductController
	Cart          *controllers.CartController
	Orders        *controllers.OrderController
	Stores        *controllers.StoreController
	Consultations *controllers.ConsultationController
	Emails        *controllers.EmailController
	Uploads       *controllers.UploadController
	Schema        graphql.Schema
	OrderFeed     *ws.Hub
}

// RegisterAPI mounts every route. Catalog and store reads are public; all
// catalog and store mutations, user administration and the order feed
// require an admin session.
func RegisterAPI(r *router.Router, d Deps) {
	admin := []router.Middleware{middleware.Authenticate, middleware.AdminOnly}

	api := r.Group("/api")

	// Catalog.
	products := api.Group("/products")
	products.Get("", "products.index", ctx.Wrap(d.Products.List))
	products.Post("", "products.store", ctx.Wrap(d.Products.Create), admin...)
	products.Get("/category/{category}", "products.category.index", ctx.Wrap(d.Products.ListByCategory))
	products.Post("/category/{category}", "products.category.store", ctx.Wrap(d.Products.CreateInCategory), admin...)
	products.Get("/{id}", "products.show", ctx.Wrap(d.Products.Get))
	products.Put("/{id}", "products.update", ctx.Wrap(d.Products.Update), admin...)
	products.Delete("/{id}", "products.destroy", ctx.Wrap(d.Products.Delete), admin...)

	// Store locator.
	stores := api.Group("/stores")
	stores.Get("", "stores.index", ctx.Wrap(d.Stores.List))
	stores.Post("/create", "stores.store", ctx.Wrap(d.Stores.Create), admin...)
	stores.Get("/{id}", "stores.show", ctx.Wrap(d.Stores.Get))

	// Identity and session.
	users := api.Group("/users")
	users.Post("/registerUser", "users.register", ctx.Wrap(d.Auth.Register))
	users.Post("/login", "users.login", ctx.Wrap(d.Auth.Login))
	users.Post("/logout", "users.logout", ctx.Wrap(d.Auth.Logout))
	users.Post("/forgot-password", "users.forgot", ctx.Wrap(d.Auth.ForgotPassword))
	users.Post("/reset-password/{token}", "users.reset", ctx.Wrap(d.Auth.ResetPassword))
	users.Put("/update", "users.update", ctx.Wrap(d.Users.Update), middleware.Authenticate)
	users.Get("", "users.index", ctx.Wrap(d.Users.List), admin...)
	users.Delete("/{id}", "users.destroy", ctx.Wrap(d.Users.Delete), admin...)

	// Cart. Session required on every route.
	cart := api.Group("/cart", middleware.Authenticate)
	cart.Get("", "cart.show", ctx.Wrap(d.Cart.Get))
	cart.Delete("", "cart.clear", ctx.Wrap(d.Cart.Clear))
	cart.Post("/{id}", "cart.add", ctx.Wrap(d.Cart.Add))
	cart.Put("/{id}", "cart.update", ctx.Wrap(d.Cart.SetQuantity))
	cart.Delete("/{id}", "cart.remove", ctx.Wrap(d.Cart.Remove))

	// Checkout.
	api.Post("/orders/create", "orders.create", ctx.Wrap(d.Orders.Create))
	api.Get("/orders", "orders.index", ctx.Wrap(d.Orders.ListMine), middleware.Authenticate)

	// Consultation booking.
	api.Post("/book-consultation", "consultations.book", ctx.Wrap(d.Consultations.Book))

	// Transactional mail passthrough.
	api.Post("/v1/emails/send-email", "emails.send", ctx.Wrap(d.Emails.Send))

	// Image uploads for the back office.
	api.Post("/uploads/upload", "uploads.store", ctx.Wrap(d.Uploads.Upload), admin...)

	// Read-only catalog GraphQL.
	api.Post("/graphql", "graphql.query", ctx.Wrap(appgraphql.Handler(d.Schema)))

	// Live order feed for admin dashboards.
	api.Get("/admin/orders/feed", "admin.orders.feed", orderFeedHandler(d.OrderFeed), admin...)

	r.Get("/metrics", "metrics.show", metrics.Handler())

	registerStorage(r)
}

func orderFeedHandler(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws.Upgrade(w, r, hub)
	}
}

// registerStorage serves locally stored uploads when the local disk is
// active. S3 disks serve their own URLs.
func registerStorage(r *router.Router) {
	if config.StorageDisk() != "local" {
		return
	}
	root := http.Dir(config.StorageLocalRoot())
	fs := http.StripPrefix("/storage/", http.FileServer(root))
	r.Get("/storage/*", "storage.show", func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.URL.Path, "..") {
			http.NotFound(w, req)
			return
		}
		fs.ServeHTTP(w, req)
	})
}
