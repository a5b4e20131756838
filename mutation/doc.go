// Package mutation provides structural mutations of KDL nodes.
//
// A Mutation is applied to one node at a time and either returns a new
// node to take its place or reports that the node is unaffected. Deciding
// which nodes of a document to visit, and putting the results back
// together, is left to the caller.
//
// # Subtract
//
// Subtract keeps selected arguments, drops selected properties and keeps,
// empties or deletes the child document:
//
//	sub, err := mutation.NewSubtractBuilder().
//	    AddArg(predicate.Equals(kdl.FromString("a"))).
//	    AddProp(predicate.Key("y")).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	res, ok := sub.Apply(node)
//
// Note the two directions: argument predicates select what survives while
// property predicates select what is removed.
//
// Both SubtractBuilder.Build and NewSubtract fail with
// ErrInvalidConfiguration when asked both to empty and to delete the child.
//
// # Debugging
//
// Setting KDL_DEBUG_MUTATION=true logs every application and its result
// to stderr.
package mutation
