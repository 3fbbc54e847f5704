package router

import (
	"hivesite/internal/service/middleware"
	user "hivesite/internal/user/controller"

	"github.com/gorilla/mux"
)

// SetUpRoutes wires the user endpoints. Identity-bound routes go through
// RequireIdentity; profile and game reads by id stay public.
func SetUpRoutes(userHandler *user.UserHandler, jwtToken middleware.JwtTokenService) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc(api+"/user/{uid}", userHandler.GetUser).Methods("GET")
	router.HandleFunc(api+"/user", middleware.RequireIdentity(jwtToken, userHandler.CreateUser)).Methods("POST")
	router.HandleFunc(api+"/guest-user", middleware.RequireIdentity(jwtToken, userHandler.CreateGuestUser)).Methods("POST")
	router.HandleFunc(api+"/user/{uid}/challenges", middleware.RequireIdentity(jwtToken, userHandler.GetUserChallenges)).Methods("GET")
	router.HandleFunc(api+"/user/{uid}/games", userHandler.GetUserGames).Methods("GET")
	return router
}
