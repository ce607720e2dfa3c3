// Package router moves between the reels screen and article screens.
//
// Every screen is a function from an input to a result. One transition
// function sees every result and decides where to go next, so the whole
// navigation graph lives in one place:
//
//	r := router.New(logger)
//	r.Register(ScreenReels, "reels", runReels)
//	r.Register(ScreenArticle, "article", runArticle)
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenReels:
//	        res := result.(ReelsResult)
//	        stack.Push(from, ReelsInput{}, res.Resume)
//	        return ScreenArticle, ArticleInput{Route: res.Route}
//	    case ScreenArticle:
//	        entry := stack.Pop()
//	        return entry.Screen, ReelsInput{Resume: entry.Resume.(*ReelsResume)}
//	    }
//	    return router.ScreenExit, nil
//	})
//	err := r.Run(ctx, ScreenReels, ReelsInput{})
//
// # Resume state
//
// A screen that is left forward returns resume state (the deck position for
// reels). It is pushed on the stack with the screen's input and handed back
// when the user returns, so the deck reopens on the card they left from.
//
// # Routes
//
// Articles are addressed as /{category}/{id}. Navigator is the navigation
// sink a screen hands to its deck: it records the requested Route and the
// screen ends its loop when one is pending.
package router
